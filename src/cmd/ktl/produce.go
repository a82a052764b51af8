package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"typedkafka/src/broker"
	"typedkafka/src/config"
)

var (
	produceKey     string
	produceTimeout time.Duration
)

var produceCmd = &cobra.Command{
	Use:   "produce <topic> <payload-json>",
	Short: "Publish one JSON payload to a topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := json.RawMessage(args[1])
		if !json.Valid(payload) {
			return fmt.Errorf("payload is not valid JSON")
		}

		cfg := config.NewProducer().
			BootstrapServers(brokerList()...).
			ClientID("ktl").
			Build()

		p, err := broker.NewProducer(cfg, broker.WithProducerLogger(log))
		if err != nil {
			return err
		}
		defer p.Close()

		var key []byte
		if produceKey != "" {
			key = []byte(produceKey)
		}

		topic := jsonTopic{name: args[0]}
		if err := broker.Send(cmd.Context(), p, topic, payload, key, produceTimeout); err != nil {
			return err
		}
		log.Zerolog().Info().Str("topic", topic.TopicName()).Msg("produced")
		return nil
	},
}

func init() {
	produceCmd.Flags().StringVarP(&produceKey, "key", "k", "", "record key (unkeyed when empty)")
	produceCmd.Flags().DurationVarP(&produceTimeout, "timeout", "t", 5*time.Second, "acknowledgement timeout")
	rootCmd.AddCommand(produceCmd)
}
