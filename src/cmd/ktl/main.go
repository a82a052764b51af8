// Package main provides ktl, a small CLI over the typed Kafka client layer:
// produce a JSON payload, consume a topic, or create one. It doubles as the
// end-to-end exercise of the library against a real broker.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"typedkafka/src/logger"
)

var (
	flagBrokers string
	flagVerbose bool

	log = logger.Nop()
)

// jsonTopic is a fixed-name topic carrying arbitrary JSON, the payload type
// the CLI works with.
type jsonTopic struct {
	name string
}

func (t jsonTopic) TopicName() string { return t.name }

func (jsonTopic) PayloadType() json.RawMessage { return nil }

var rootCmd = &cobra.Command{
	Use:   "ktl",
	Short: "ktl - typed Kafka topics from the command line",
	Long: `ktl produces to, consumes from, and creates Kafka topics through the
typed client layer. Brokers are taken from --brokers, the KAFKA_BROKERS
environment variable, or a .env file, in that order of precedence.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		log = logger.Console(os.Stderr, level)
	},
}

func brokerList() []string {
	return strings.Split(flagBrokers, ",")
}

func printMessageJSON(w *os.File, topic string, partition int32, offset int64, key []byte, payload json.RawMessage) {
	out := map[string]any{
		"topic":     topic,
		"partition": partition,
		"offset":    offset,
		"payload":   payload,
	}
	if key != nil {
		out["key"] = string(key)
	}
	enc := json.NewEncoder(w)
	_ = enc.Encode(out)
}

func main() {
	// a missing .env is fine; flags and the environment still apply
	_ = godotenv.Load()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	rootCmd.PersistentFlags().StringVar(&flagBrokers, "brokers", brokers, "comma-separated bootstrap host:port list")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log raw client internals")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
