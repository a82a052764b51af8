package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"typedkafka/src/broker"
	"typedkafka/src/config"
)

var (
	consumeGroup    string
	consumeEarliest bool
	consumeCount    int
)

var consumeCmd = &cobra.Command{
	Use:   "consume <topic>",
	Short: "Consume a topic and print messages as JSON lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group := consumeGroup
		if group == "" {
			group = "ktl-" + uuid.NewString()
		}
		reset := config.OffsetResetLatest
		if consumeEarliest {
			reset = config.OffsetResetEarliest
		}

		cfg := config.NewConsumer().
			BootstrapServers(brokerList()...).
			ClientID("ktl").
			GroupID(group).
			AutoOffsetReset(reset).
			Build()

		c, err := broker.NewConsumer[json.RawMessage](cfg, jsonTopic{name: args[0]}, broker.WithConsumerLogger(log))
		if err != nil {
			return err
		}
		defer c.Close()

		// cancelling on return unparks the stream goroutine when we stop
		// reading early, e.g. after --count messages
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		seen := 0
		for res := range c.Stream(ctx) {
			if res.Err != nil {
				log.Zerolog().Error().Err(res.Err).Msg("receive failed")
				continue
			}
			payload, err := res.Msg.Payload()
			if err != nil {
				log.Zerolog().Error().Err(err).Msg("payload unusable")
				continue
			}
			printMessageJSON(os.Stdout, res.Msg.Topic().TopicName(), res.Msg.Partition(), res.Msg.Offset(), res.Msg.Key(), payload)
			seen++
			if consumeCount > 0 && seen >= consumeCount {
				return nil
			}
		}
		// stream closed: interrupted or consumer shut down
		return nil
	},
}

func init() {
	consumeCmd.Flags().StringVarP(&consumeGroup, "group", "g", "", "consumer group id (generated when empty)")
	consumeCmd.Flags().BoolVar(&consumeEarliest, "from-beginning", false, "start from the earliest offset when the group has none")
	consumeCmd.Flags().IntVarP(&consumeCount, "count", "n", 0, "stop after this many messages (0 = forever)")
	rootCmd.AddCommand(consumeCmd)
}
