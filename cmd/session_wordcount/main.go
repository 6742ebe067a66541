package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"session-stream/pkg/commtypes"
	"session-stream/pkg/env_config"
	"session-stream/pkg/optional"
	"session-stream/pkg/processor"
	"session-stream/pkg/snapshot_store"
	"session-stream/pkg/store"

	"github.com/Jeffail/gabs/v2"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zhangyunhao116/skipset"
)

var (
	FLAGS_config_file string
	FLAGS_duration    int
	FLAGS_events_num  int
)

func init() {
	logLevel := os.Getenv("LOG_LEVEL")
	if level, err := zerolog.ParseLevel(logLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

type wordCountConfig struct {
	broker          string
	topic           string
	groupId         string
	snapshotBackend string
	gapMs           int64
	graceMs         int64
	retentionMs     int64
	snapshotEvery   int
	tabType         store.TABLE_TYPE
	serdeFormat     commtypes.SerdeFormat
}

func parseConfig(configFile string) (*wordCountConfig, error) {
	byteVal, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}
	jsonParsed, err := gabs.ParseJSON(byteVal)
	if err != nil {
		return nil, err
	}
	cfg := &wordCountConfig{
		broker:  jsonParsed.S("Broker").Data().(string),
		topic:   jsonParsed.S("Topic").Data().(string),
		groupId: jsonParsed.S("GroupId").Data().(string),
		gapMs:   int64(jsonParsed.S("GapMs").Data().(float64)),
	}
	if jsonParsed.Exists("GraceMs") {
		cfg.graceMs = int64(jsonParsed.S("GraceMs").Data().(float64))
	}
	cfg.retentionMs = 3600000
	if jsonParsed.Exists("RetentionMs") {
		cfg.retentionMs = int64(jsonParsed.S("RetentionMs").Data().(float64))
	}
	if jsonParsed.Exists("SnapshotEveryEvents") {
		cfg.snapshotEvery = int(jsonParsed.S("SnapshotEveryEvents").Data().(float64))
	}
	cfg.snapshotBackend = "redis"
	if jsonParsed.Exists("SnapshotBackend") {
		cfg.snapshotBackend = jsonParsed.S("SnapshotBackend").Data().(string)
	}
	switch jsonParsed.S("StoreBackend").Data().(string) {
	case "btree":
		cfg.tabType = store.BTREE
	default:
		cfg.tabType = store.SKIPMAP
	}
	switch jsonParsed.S("SerdeFormat").Data().(string) {
	case "json":
		cfg.serdeFormat = commtypes.JSON
	default:
		cfg.serdeFormat = commtypes.MSGP
	}
	return cfg, nil
}

// offsetDedupKey packs (partition, offset) into one skipset key. The offset
// is masked to the low 48 bits so it cannot spill into the partition bits.
func offsetDedupKey(partition int32, offset int64) uint64 {
	return uint64(partition)<<48 | uint64(offset)&(1<<48-1)
}

func tokenize(msg commtypes.MessageG[string, string]) ([]commtypes.MessageG[string, string], error) {
	line, ok := msg.Value.Take()
	if !ok {
		return nil, nil
	}
	var out []commtypes.MessageG[string, string]
	for _, word := range strings.Fields(strings.ToLower(line)) {
		out = append(out, commtypes.MessageG[string, string]{
			Key:       optional.Some(word),
			Value:     optional.Some(word),
			Timestamp: msg.Timestamp,
		})
	}
	return out, nil
}

func main() {
	flag.StringVar(&FLAGS_config_file, "config", "wordcount_config.json", "path to config file")
	flag.IntVar(&FLAGS_duration, "duration", 60, "run duration in seconds")
	flag.IntVar(&FLAGS_events_num, "events_num", 0, "stop after this many records; 0 means no limit")
	flag.Parse()

	cfg, err := parseConfig(FLAGS_config_file)
	if err != nil {
		log.Fatal().Err(err).Msg("fail to parse config")
	}

	windows, err := processor.NewSessionWindowsWithGrace(
		time.Duration(cfg.gapMs)*time.Millisecond, time.Duration(cfg.graceMs)*time.Millisecond)
	if err != nil {
		log.Fatal().Err(err).Msg("fail to create session windows")
	}
	sessionTab := store.NewCoreSessionStoreG[string, uint64](cfg.tabType, "wordSessionTab",
		cfg.retentionMs, store.CompareFuncG[string](store.StringCompare))
	wkSerde, err := commtypes.GetWindowedKeySerdeG[string](cfg.serdeFormat, commtypes.StringSerdeG{})
	if err != nil {
		log.Fatal().Err(err).Msg("fail to get windowed key serde")
	}
	if err = sessionTab.SetKVSerde(cfg.serdeFormat, wkSerde, commtypes.Uint64SerdeG{}); err != nil {
		log.Fatal().Err(err).Msg("fail to set kv serde")
	}

	aggProc := processor.NewStreamSessionWindowAggregateProcessorG[string, string, uint64](
		"wordSessionCount", sessionTab, windows,
		processor.InitializerFuncG[uint64](func() optional.Option[uint64] {
			return optional.Some(uint64(0))
		}),
		processor.AggregatorFuncG[string, string, uint64](
			func(key string, value string, aggregate optional.Option[uint64]) optional.Option[uint64] {
				return optional.Some(aggregate.Unwrap() + 1)
			}),
		processor.MergerFuncG[string, uint64](
			func(key string, aggOne optional.Option[uint64], aggTwo optional.Option[uint64]) optional.Option[uint64] {
				return optional.Some(aggOne.Unwrap() + aggTwo.Unwrap())
			}))
	meteredAgg := processor.NewMeteredProcessorG[string, string, commtypes.WindowedKeyG[string], commtypes.ChangeG[uint64]](aggProc)

	tokenizer := processor.NewStreamFlatMapProcessorG[string, string, string, string]("tokenizer",
		processor.FlatMapperFuncG[string, string, string, string](tokenize))
	tokenizer.NextProcessor(func(ctx context.Context, msg commtypes.MessageG[string, string]) error {
		outs, err := meteredAgg.ProcessAndReturn(ctx, msg)
		if err != nil {
			return err
		}
		for _, out := range outs {
			wk := out.Key.Unwrap()
			change := out.Value.Unwrap()
			if count, hasNew := change.NewVal.Take(); hasNew {
				log.Info().Msgf("%s@[%d,%d] count %d", wk.Key, wk.Window.Start(), wk.Window.End(), count)
			} else {
				log.Info().Msgf("%s@[%d,%d] retracted", wk.Key, wk.Window.Start(), wk.Window.End())
			}
		}
		return nil
	})

	ctx := context.Background()
	var chkptStore snapshot_store.SnapshotStore
	if env_config.CREATE_SNAPSHOT {
		if cfg.snapshotBackend == "minio" {
			ms, err := snapshot_store.NewMinioSnapshotStore()
			if err != nil {
				log.Fatal().Err(err).Msg("fail to create minio snapshot store")
			}
			if err = ms.CreateChkptBucket(ctx); err != nil {
				log.Fatal().Err(err).Msg("fail to create chkpt bucket")
			}
			chkptStore = ms
		} else {
			rs := snapshot_store.NewRedisSnapshotStore(true)
			chkptStore = &rs
		}
	}
	payloadSerde, err := commtypes.GetPayloadArrSerdeG(cfg.serdeFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("fail to get payload serde")
	}

	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.broker,
		"group.id":          cfg.groupId,
		"auto.offset.reset": "earliest"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create consumer: %s\n", err)
		os.Exit(1)
	}
	err = c.SubscribeTopics([]string{cfg.topic}, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fail to subscribe to topic: %s\n", err)
		os.Exit(1)
	}

	seenOffsets := skipset.NewUint64()
	duration := time.Duration(FLAGS_duration) * time.Second
	start := time.Now()
	processed := 0
	for {
		if (duration != 0 && time.Since(start) > duration) ||
			(FLAGS_events_num != 0 && processed >= FLAGS_events_num) {
			break
		}
		ev := c.Poll(100)
		if ev == nil {
			continue
		}
		switch e := ev.(type) {
		case *kafka.Message:
			offKey := offsetDedupKey(e.TopicPartition.Partition, int64(e.TopicPartition.Offset))
			if !seenOffsets.Add(offKey) {
				// already handled; the broker redelivered it
				continue
			}
			msg := commtypes.MessageG[string, string]{
				Key:       optional.None[string](),
				Value:     optional.Some(string(e.Value)),
				Timestamp: e.Timestamp.UnixMilli(),
			}
			if err := tokenizer.Process(ctx, msg); err != nil {
				log.Fatal().Err(err).Msg("fail to process record")
			}
			processed += 1
			if chkptStore != nil && cfg.snapshotEvery > 0 && processed%cfg.snapshotEvery == 0 {
				err = snapshot_store.StoreSessionSnapshot[string, uint64](ctx, chkptStore, sessionTab,
					uint64(processed), payloadSerde)
				if err != nil {
					log.Error().Err(err).Msg("fail to store snapshot")
				}
			}
		case kafka.Error:
			log.Error().Msgf("consumer err: %v", e)
		}
	}
	if err := c.Close(); err != nil {
		log.Error().Err(err).Msg("fail to close consumer")
	}
	log.Info().
		Int("processed", processed).
		Uint64("dropped", aggProc.DroppedRecords()).
		Int64("streamTime", aggProc.ObservedStreamTime()).
		Msg("done")
}
