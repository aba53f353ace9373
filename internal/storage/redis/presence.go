package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"rescueHub/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// Presence keeps the actor→connection mapping in Redis so that every
// service instance sees the same view. One actor can hold several live
// connections at once; entries live until an explicit unregister.
type Presence struct {
	client      *goredis.Client
	connPrefix  string
	locPrefix   string
	locationTTL time.Duration
}

func NewPresence(r *Redis) *Presence {
	return &Presence{
		client:      r.Client,
		connPrefix:  "presence:conn:",
		locPrefix:   "presence:loc:",
		locationTTL: domain.LocationFreshFor,
	}
}

func (p *Presence) connKey(actorID int64) string {
	return p.connPrefix + strconv.FormatInt(actorID, 10)
}

func (p *Presence) locKey(actorID int64) string {
	return p.locPrefix + strconv.FormatInt(actorID, 10)
}

func (p *Presence) Register(ctx context.Context, actorID int64, connID string) error {
	return p.client.SAdd(ctx, p.connKey(actorID), connID).Err()
}

func (p *Presence) Unregister(ctx context.Context, actorID int64, connID string) error {
	pipe := p.client.TxPipeline()
	pipe.SRem(ctx, p.connKey(actorID), connID)
	// drop the key entirely once the last connection is gone
	pipe.Eval(ctx,
		`if redis.call('SCARD', KEYS[1]) == 0 then return redis.call('DEL', KEYS[1]) end return 0`,
		[]string{p.connKey(actorID)})
	_, err := pipe.Exec(ctx)
	return err
}

func (p *Presence) Connections(ctx context.Context, actorID int64) ([]string, error) {
	conns, err := p.client.SMembers(ctx, p.connKey(actorID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return conns, nil
}

func (p *Presence) IsOnline(ctx context.Context, actorID int64) (bool, error) {
	n, err := p.client.Exists(ctx, p.connKey(actorID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// OnlineSubset filters ids down to actors that currently hold at least one
// connection, using a prefix scan so one round of SCANs serves the whole
// batch.
func (p *Presence) OnlineSubset(ctx context.Context, ids []int64) (map[int64]bool, error) {
	online := make(map[int64]bool)
	if len(ids) == 0 {
		return online, nil
	}

	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	iter := p.client.Scan(ctx, 0, p.connPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		raw := strings.TrimPrefix(iter.Val(), p.connPrefix)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if wanted[id] {
			online[id] = true
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return online, nil
}

func (p *Presence) CacheLocation(ctx context.Context, loc domain.CachedLocation) error {
	b, err := json.Marshal(loc)
	if err != nil {
		return err
	}
	return p.client.Set(ctx, p.locKey(loc.ActorID), b, p.locationTTL).Err()
}

// GetCachedLocation returns nil on a miss. The timestamp comes back as
// stored; freshness is re-checked by the caller.
func (p *Presence) GetCachedLocation(ctx context.Context, actorID int64) (*domain.CachedLocation, error) {
	data, err := p.client.Get(ctx, p.locKey(actorID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var loc domain.CachedLocation
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}
