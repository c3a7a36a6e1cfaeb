package decodecache

import (
	"context"
	"log/slog"

	"slipstats/internal/logging"
	"slipstats/internal/replay"
)

type cachedDecoder struct {
	store  *Store
	next   replay.Decoder
	logger *slog.Logger
}

// Wrap returns a Decoder that serves unchanged files from store and records
// fresh decodes from next. Cache faults degrade to plain decoding.
func Wrap(store *Store, next replay.Decoder, logger *slog.Logger) replay.Decoder {
	if store == nil {
		return next
	}
	return &cachedDecoder{
		store:  store,
		next:   next,
		logger: logging.NewComponentLogger(logger, "decodecache"),
	}
}

func (d *cachedDecoder) Decode(ctx context.Context, path string) (*replay.Match, error) {
	key, err := KeyFor(path)
	if err != nil {
		return d.next.Decode(ctx, path)
	}

	match, ok, err := d.store.Lookup(ctx, key)
	if err != nil {
		d.logger.Debug("cache lookup failed", logging.String(logging.FieldPath, path), logging.Error(err))
	}
	if ok {
		match.Path = path
		return match, nil
	}

	match, err = d.next.Decode(ctx, path)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, nil
	}
	if match.Path == "" {
		match.Path = path
	}
	if putErr := d.store.Put(ctx, key, match); putErr != nil {
		logging.WarnWithContext(d.logger, "cache write failed", "decode_cache_write_failed",
			logging.String(logging.FieldPath, path),
			logging.Error(putErr),
			logging.String(logging.FieldImpact, "replay will be decoded again on the next scan"))
	}
	return match, nil
}
