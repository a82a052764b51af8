package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"typedkafka/src/broker"
	"typedkafka/src/config"
)

var (
	topicPartitions  int32
	topicReplication int16
)

var createTopicCmd = &cobra.Command{
	Use:   "create-topic <topic>",
	Short: "Create a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewAdmin().
			BootstrapServers(brokerList()...).
			ClientID("ktl").
			Build()

		a, err := broker.NewAdmin(cfg, broker.WithAdminLogger(log))
		if err != nil {
			return err
		}
		defer a.Close()

		replication := broker.BrokerDefaultReplication()
		if topicReplication > 0 {
			replication = broker.ReplicationFactor(topicReplication)
		}

		topic := jsonTopic{name: args[0]}
		err = a.CreateTopic(cmd.Context(), topic, topicPartitions, replication)
		var adminErr *broker.AdminError
		if errors.As(err, &adminErr) && adminErr.AlreadyExists() {
			return fmt.Errorf("topic %q already exists", topic.TopicName())
		}
		if err != nil {
			return err
		}
		log.Zerolog().Info().Str("topic", topic.TopicName()).Msg("created")
		return nil
	},
}

func init() {
	createTopicCmd.Flags().Int32VarP(&topicPartitions, "partitions", "p", 1, "partition count")
	createTopicCmd.Flags().Int16VarP(&topicReplication, "replication", "r", 0, "replication factor (0 = broker default)")
	rootCmd.AddCommand(createTopicCmd)
}
