/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/model"
	"github.com/asgardeo/beacon/internal/system/config"
)

// Timeouts of the Redis client.
const (
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second
)

// Key types of the Redis authorization store.
const (
	keyTypeAuthorization = "authz"
	keyTypeCode          = "code"
	keyTypeAccessToken   = "token"
)

// storedAuthorization is the hash layout of an authorization record.
type storedAuthorization struct {
	ID           string `redis:"id"`
	ClientID     string `redis:"client_id"`
	Scope        string `redis:"scope"`
	RedirectURI  string `redis:"redirect_uri"`
	ResponseType string `redis:"response_type"`
	State        string `redis:"state"`
	CreatedAt    int64  `redis:"created_at"`
	UserID       string `redis:"user_id"`
	Code         string `redis:"code"`
	CodeExpiry   int64  `redis:"code_expiry"`
	AccessToken  string `redis:"access_token"`
	ExpiryDate   int64  `redis:"expiry_date"`
	GrantedAt    int64  `redis:"granted_at"`
}

// grantScript grants a record that exists and is still pending, then indexes the code and the
// access token. Returns 1 on success, 0 when the record is missing and -1 when it is granted.
var grantScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
local userID = redis.call('HGET', KEYS[1], 'user_id')
if userID and userID ~= '' then
	return -1
end
redis.call('HSET', KEYS[1], 'user_id', ARGV[1], 'code', ARGV[2], 'code_expiry', ARGV[3],
	'access_token', ARGV[4], 'expiry_date', ARGV[5], 'granted_at', ARGV[6])
redis.call('PEXPIRE', KEYS[1], ARGV[7])
if ARGV[2] ~= '' then
	redis.call('SET', KEYS[2], ARGV[9], 'PX', ARGV[8])
end
redis.call('SET', KEYS[3], ARGV[9], 'PX', ARGV[7])
return 1
`)

// RedisAuthorizationStore persists authorizations in Redis. Records expire on their own: a
// pending record after the pending validity period, a granted record some time after its
// access token expires, and the code index when the code expires or is redeemed.
type RedisAuthorizationStore struct {
	client          redis.UniversalClient
	keyPrefix       string
	pendingValidity time.Duration
	timeNow         func() time.Time
}

// NewRedisAuthorizationStore creates a Redis backed authorization store and checks the connection.
func NewRedisAuthorizationStore(ctx context.Context, redisConfig config.RedisConfig,
	pendingValidity time.Duration) (*RedisAuthorizationStore, error) {
	client, err := newRedisClient(redisConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid redis configuration: %w", err)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisAuthorizationStoreWithClient(client, redisConfig.KeyPrefix, pendingValidity), nil
}

// newRedisClient connects to a Sentinel monitored master when a master name is configured and to
// a single standalone server otherwise. Cluster mode is not supported: the grant script touches
// keys that hash to different slots.
func newRedisClient(redisConfig config.RedisConfig) (*redis.Client, error) {
	if redisConfig.MasterName != "" {
		if len(redisConfig.Addresses) == 0 {
			return nil, errors.New("at least one sentinel address is required")
		}
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    redisConfig.MasterName,
			SentinelAddrs: redisConfig.Addresses,
			Username:      redisConfig.Username,
			Password:      redisConfig.Password,
			DB:            redisConfig.DB,
			DialTimeout:   defaultDialTimeout,
			ReadTimeout:   defaultReadTimeout,
			WriteTimeout:  defaultWriteTimeout,
		}), nil
	}

	if len(redisConfig.Addresses) != 1 {
		return nil, errors.New("exactly one redis address is required without a sentinel master name")
	}
	return redis.NewClient(&redis.Options{
		Addr:         redisConfig.Addresses[0],
		Username:     redisConfig.Username,
		Password:     redisConfig.Password,
		DB:           redisConfig.DB,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}), nil
}

// NewRedisAuthorizationStoreWithClient creates a RedisAuthorizationStore with a pre-configured client.
func NewRedisAuthorizationStoreWithClient(client redis.UniversalClient, keyPrefix string,
	pendingValidity time.Duration) *RedisAuthorizationStore {
	return &RedisAuthorizationStore{
		client:          client,
		keyPrefix:       keyPrefix,
		pendingValidity: pendingValidity,
		timeNow:         time.Now,
	}
}

// Close closes the Redis client connection.
func (s *RedisAuthorizationStore) Close() error {
	return s.client.Close()
}

// CreatePendingAuthorization stores a new pending authorization.
func (s *RedisAuthorizationStore) CreatePendingAuthorization(ctx context.Context,
	pending model.PendingAuthorization) error {
	key := s.redisKey(keyTypeAuthorization, pending.ID)
	stored := storedAuthorization{
		ID:           pending.ID,
		ClientID:     pending.ClientID,
		Scope:        pending.Scope,
		RedirectURI:  pending.RedirectURI,
		ResponseType: pending.ResponseType,
		State:        pending.State,
		CreatedAt:    pending.CreatedAt.Unix(),
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, stored)
		pipe.Expire(ctx, key, s.pendingValidity)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store pending authorization: %w", err)
	}
	return nil
}

// GetPendingAuthorization retrieves an authorization that has not been granted yet.
func (s *RedisAuthorizationStore) GetPendingAuthorization(ctx context.Context,
	id string) (model.PendingAuthorization, error) {
	stored, err := s.getStoredAuthorization(ctx, id)
	if err != nil {
		return model.PendingAuthorization{}, err
	}
	if stored.UserID != "" {
		return model.PendingAuthorization{}, constants.ErrAuthorizationAlreadyGranted
	}
	return stored.toPendingAuthorization(), nil
}

// GrantAuthorization stores the granted state of a pending authorization.
func (s *RedisAuthorizationStore) GrantAuthorization(ctx context.Context, granted model.GrantedAuthorization) error {
	now := s.timeNow()
	recordTTL := granted.ExpiryDate.Add(constants.ExpiredAuthorizationRetention).Sub(now)
	if !granted.ExpiryDate.After(now) {
		return errors.New("access token expiry must be in the future")
	}

	codeTTL := time.Duration(0)
	var codeExpiry int64
	if granted.Code != "" {
		codeTTL = granted.CodeExpiry.Sub(now)
		if codeTTL <= 0 {
			return errors.New("authorization code expiry must be in the future")
		}
		codeExpiry = granted.CodeExpiry.Unix()
	}

	keys := []string{
		s.redisKey(keyTypeAuthorization, granted.ID),
		s.redisKey(keyTypeCode, granted.Code),
		s.redisKey(keyTypeAccessToken, granted.AccessToken),
	}
	result, err := grantScript.Run(ctx, s.client, keys,
		granted.UserID, granted.Code, codeExpiry, granted.AccessToken, granted.ExpiryDate.Unix(),
		granted.GrantedAt.Unix(), recordTTL.Milliseconds(), codeTTL.Milliseconds(), granted.ID).Int()
	if err != nil {
		return fmt.Errorf("failed to grant authorization: %w", err)
	}

	switch result {
	case 1:
		return nil
	case -1:
		return constants.ErrAuthorizationAlreadyGranted
	default:
		return constants.ErrAuthorizationNotFound
	}
}

// GetAuthorizationByCode retrieves the granted authorization holding an unredeemed code.
func (s *RedisAuthorizationStore) GetAuthorizationByCode(ctx context.Context,
	code string) (model.GrantedAuthorization, error) {
	stored, err := s.getIndexedAuthorization(ctx, keyTypeCode, code)
	if err != nil {
		return model.GrantedAuthorization{}, err
	}
	if stored.Code != code {
		return model.GrantedAuthorization{}, constants.ErrAuthorizationNotFound
	}
	return stored.toGrantedAuthorization(constants.AuthCodeStateActive), nil
}

// RedeemAuthorizationCode removes the code index. Only the caller that removes it succeeds.
func (s *RedisAuthorizationStore) RedeemAuthorizationCode(ctx context.Context, code string) error {
	err := s.client.GetDel(ctx, s.redisKey(keyTypeCode, code)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return constants.ErrCodeAlreadyRedeemed
		}
		return fmt.Errorf("failed to redeem authorization code: %w", err)
	}
	return nil
}

// GetAuthorizationByAccessToken retrieves the granted authorization holding the access token.
func (s *RedisAuthorizationStore) GetAuthorizationByAccessToken(ctx context.Context,
	accessToken string) (model.GrantedAuthorization, error) {
	stored, err := s.getIndexedAuthorization(ctx, keyTypeAccessToken, accessToken)
	if err != nil {
		return model.GrantedAuthorization{}, err
	}
	if stored.AccessToken != accessToken {
		return model.GrantedAuthorization{}, constants.ErrAuthorizationNotFound
	}

	codeState := ""
	if stored.Code != "" {
		codeState = constants.AuthCodeStateInactive
		exists, err := s.client.Exists(ctx, s.redisKey(keyTypeCode, stored.Code)).Result()
		if err != nil {
			return model.GrantedAuthorization{}, fmt.Errorf("failed to check authorization code: %w", err)
		}
		if exists > 0 {
			codeState = constants.AuthCodeStateActive
		}
	}
	return stored.toGrantedAuthorization(codeState), nil
}

// DeleteExpiredAuthorizations is a no-op since Redis expires the records on its own.
func (s *RedisAuthorizationStore) DeleteExpiredAuthorizations(context.Context, time.Time, time.Time) (int64, error) {
	return 0, nil
}

// Ping checks Redis connectivity.
func (s *RedisAuthorizationStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisAuthorizationStore) redisKey(keyType, id string) string {
	return s.keyPrefix + keyType + ":" + id
}

func (s *RedisAuthorizationStore) getStoredAuthorization(ctx context.Context,
	id string) (storedAuthorization, error) {
	cmd := s.client.HGetAll(ctx, s.redisKey(keyTypeAuthorization, id))
	values, err := cmd.Result()
	if err != nil {
		return storedAuthorization{}, fmt.Errorf("failed to get authorization: %w", err)
	}
	if len(values) == 0 {
		return storedAuthorization{}, constants.ErrAuthorizationNotFound
	}

	var stored storedAuthorization
	if err := cmd.Scan(&stored); err != nil {
		return storedAuthorization{}, fmt.Errorf("failed to read authorization: %w", err)
	}
	return stored, nil
}

func (s *RedisAuthorizationStore) getIndexedAuthorization(ctx context.Context, keyType,
	value string) (storedAuthorization, error) {
	id, err := s.client.Get(ctx, s.redisKey(keyType, value)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return storedAuthorization{}, constants.ErrAuthorizationNotFound
		}
		return storedAuthorization{}, fmt.Errorf("failed to get authorization index: %w", err)
	}

	stored, err := s.getStoredAuthorization(ctx, id)
	if err != nil {
		return storedAuthorization{}, err
	}
	if stored.UserID == "" {
		return storedAuthorization{}, constants.ErrAuthorizationNotFound
	}
	return stored, nil
}

func (sa storedAuthorization) toPendingAuthorization() model.PendingAuthorization {
	return model.PendingAuthorization{
		ID:           sa.ID,
		ClientID:     sa.ClientID,
		Scope:        sa.Scope,
		RedirectURI:  sa.RedirectURI,
		ResponseType: sa.ResponseType,
		State:        sa.State,
		CreatedAt:    time.Unix(sa.CreatedAt, 0).UTC(),
	}
}

func (sa storedAuthorization) toGrantedAuthorization(codeState string) model.GrantedAuthorization {
	granted := model.GrantedAuthorization{
		PendingAuthorization: sa.toPendingAuthorization(),
		UserID:               sa.UserID,
		Code:                 sa.Code,
		CodeState:            codeState,
		AccessToken:          sa.AccessToken,
		ExpiryDate:           time.Unix(sa.ExpiryDate, 0).UTC(),
		GrantedAt:            time.Unix(sa.GrantedAt, 0).UTC(),
	}
	if sa.CodeExpiry != 0 {
		granted.CodeExpiry = time.Unix(sa.CodeExpiry, 0).UTC()
	}
	return granted
}
