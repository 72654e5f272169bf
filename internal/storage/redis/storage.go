package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, wrap(err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// wrap marks an unexpected Redis error as a storage availability failure so
// callers can match on model.ErrStorageUnavailable
func wrap(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, playerKey(player.ID), data, 0).Err(); err != nil {
		return wrap(err)
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, wrap(err)
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerIDByName(ctx context.Context, name string) (model.PlayerID, error) {
	owner, err := s.client.Get(ctx, nameIndexKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrPlayerNotFound
		}
		return "", wrap(err)
	}
	return model.PlayerID(owner), nil
}

func (s *Storage) ClaimPlayerName(ctx context.Context, name string, id model.PlayerID) (model.PlayerID, bool, error) {
	key := nameIndexKey(name)

	claimed, err := s.client.SetNX(ctx, key, string(id), 0).Result()
	if err != nil {
		return "", false, wrap(err)
	}
	if claimed {
		return id, true, nil
	}

	owner, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", false, wrap(err)
	}
	return model.PlayerID(owner), false, nil
}

// Stage progress operations

func (s *Storage) AddCompletedStage(ctx context.Context, id model.PlayerID, stage model.StageID, letter string) (bool, error) {
	// SAdd is the atomic add-if-absent; HSetNX keeps the first recorded
	// letter even if a duplicate submission slips past the SAdd result
	pipe := s.client.Pipeline()
	addCmd := pipe.SAdd(ctx, completedStagesKey(id), int(stage))
	if letter != "" {
		pipe.HSetNX(ctx, firstLettersKey(id), strconv.Itoa(int(stage)), letter)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, wrap(err)
	}
	return addCmd.Val() > 0, nil
}

func (s *Storage) GetCompletedStages(ctx context.Context, id model.PlayerID) ([]model.StageID, error) {
	members, err := s.client.SMembers(ctx, completedStagesKey(id)).Result()
	if err != nil {
		return nil, wrap(err)
	}

	ids := make([]model.StageID, 0, len(members))
	for _, m := range members {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, model.StageID(n))
	}
	model.SortStageIDs(ids)
	return ids, nil
}

func (s *Storage) GetFirstLetters(ctx context.Context, id model.PlayerID) (map[model.StageID]string, error) {
	fields, err := s.client.HGetAll(ctx, firstLettersKey(id)).Result()
	if err != nil {
		return nil, wrap(err)
	}

	letters := make(map[model.StageID]string, len(fields))
	for field, letter := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		letters[model.StageID(n)] = letter
	}
	return letters, nil
}

// Completion operations

// recordCompletionScript sets the completion record and appends to the order
// list in one atomic step. Two round trips would let a failure in between
// leave a scored player invisible to the leaderboard forever, since retries
// stop at the existing record.
var recordCompletionScript = redis.NewScript(`
if redis.call("SETNX", KEYS[1], ARGV[1]) == 1 then
	redis.call("RPUSH", KEYS[2], ARGV[2])
	return 1
end
return 0
`)

func (s *Storage) RecordCompletion(ctx context.Context, completion *model.Completion) (bool, error) {
	data, err := json.Marshal(completion)
	if err != nil {
		return false, err
	}

	keys := []string{completionKey(completion.PlayerID), completionOrderKey()}
	recorded, err := recordCompletionScript.Run(ctx, s.client, keys, data, string(completion.PlayerID)).Int()
	if err != nil {
		return false, wrap(err)
	}
	return recorded == 1, nil
}

func (s *Storage) GetCompletion(ctx context.Context, id model.PlayerID) (*model.Completion, error) {
	data, err := s.client.Get(ctx, completionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCompletionNotFound
		}
		return nil, wrap(err)
	}

	var completion model.Completion
	if err := json.Unmarshal(data, &completion); err != nil {
		return nil, err
	}
	return &completion, nil
}

func (s *Storage) ListCompletions(ctx context.Context) ([]*model.Completion, error) {
	ids, err := s.client.LRange(ctx, completionOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, wrap(err)
	}

	if len(ids) == 0 {
		return []*model.Completion{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = completionKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, wrap(err)
	}

	completions := make([]*model.Completion, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var completion model.Completion
		if err := json.Unmarshal([]byte(val.(string)), &completion); err != nil {
			continue // Skip invalid data
		}
		completions = append(completions, &completion)
	}

	return completions, nil
}

// Game config operations

func (s *Storage) SaveGameConfig(ctx context.Context, cfg *model.GameConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, gameConfigKey(), data, 0).Err(); err != nil {
		return wrap(err)
	}
	return nil
}

func (s *Storage) GetGameConfig(ctx context.Context) (*model.GameConfig, error) {
	data, err := s.client.Get(ctx, gameConfigKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrConfigNotSet
		}
		return nil, wrap(err)
	}

	var cfg model.GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Stage definition operations

func (s *Storage) SaveStages(ctx context.Context, defs []model.StageDefinition) error {
	data, err := json.Marshal(defs)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, stagesKey(), data, 0).Err(); err != nil {
		return wrap(err)
	}
	return nil
}

func (s *Storage) GetStages(ctx context.Context) ([]model.StageDefinition, error) {
	data, err := s.client.Get(ctx, stagesKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStagesNotLoaded
		}
		return nil, wrap(err)
	}

	var defs []model.StageDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}
