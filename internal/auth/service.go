package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitness-api-session||"
	tokensSetKey     = "fitness-api-sessions"
	tokenLength      = 35
)

var ErrInvalidSession = errors.New("invalid session value")

type Session struct {
	Token     string
	UserID    int
	CreatedAt time.Time
}

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) TTL() time.Duration {
	return as.ttl
}

// Login opens a new session for the user and returns its token.
func (as *Service) Login(ctx context.Context, userID int, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, sessionValue(userID, createdAt), as.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the session. It reports false if the session did not exist.
func (as *Service) Logout(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessionKey := sessionKeyPrefix + token
	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// Session returns the live session for token, or nil if there is none.
// A session with an unreadable value is removed and reported as none.
func (as *Service) Session(ctx context.Context, token string) (*Session, error) {
	cmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		// unreadable session is dropped, the client can log in again
		log.Warnf("auth service, drop session with bad value: %s", err)
		if _, err := as.Logout(ctx, token); err != nil {
			return nil, fmt.Errorf("drop invalid session: %w", err)
		}
		return nil, nil
	}
	if time.Since(createdAt) > as.ttl {
		return nil, nil
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: createdAt,
	}, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// Tokens whose session key already expired in redis are dropped from the set too.
func (as *Service) ScanAndClean(ctx context.Context) int {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return 0
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return 0
	}

	log.Infof("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		cmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token: %s", err)
			continue
		}

		_, createdAt, err := parseSessionValue(cmd.Val())
		if err != nil {
			log.Errorf("=> auth service, scan and clean token: %s", err)
			toRemove = append(toRemove, token)
			continue
		}

		if time.Since(createdAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	removed := 0
	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("=> auth service, clean token: %s", err)
			continue
		}

		// remove token from the list of sessions
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token: %s", err)
			continue
		}
		removed++
	}

	log.Infof("=> auth service, scan and clean done, removed %d sessions", removed)
	return removed
}

func sessionValue(userID int, createdAt time.Time) string {
	return fmt.Sprintf("%d:%d", userID, createdAt.Unix())
}

func parseSessionValue(val string) (int, time.Time, error) {
	userIDStr, createdAtStr, found := strings.Cut(val, ":")
	if !found {
		return 0, time.Time{}, ErrInvalidSession
	}

	userID, err := strconv.Atoi(userIDStr)
	if err != nil || userID <= 0 {
		return 0, time.Time{}, ErrInvalidSession
	}

	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return 0, time.Time{}, ErrInvalidSession
	}

	return userID, time.Unix(createdAtUnix, 0), nil
}
