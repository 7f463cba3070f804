// Package fetcher acquires Folkets Lexikon documents and turns them into decoded caches.
package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/sven/internal/cache"
	"github.com/at-ishikawa/sven/internal/lexicon"
)

type Config struct {
	UserAgent string
	// RetryAttempts is the number of retries after the first download attempt.
	RetryAttempts uint
	// Timeout of a download. Zero means no timeout.
	Timeout time.Duration
}

type Fetcher struct {
	store            cache.Store
	selector         *lexicon.Selector
	httpClient       *resty.Client
	userAgent        string
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func New(store cache.Store, selector *lexicon.Selector, config Config) *Fetcher {
	client := resty.New()
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}
	return &Fetcher{
		store:            store,
		selector:         selector,
		httpClient:       client,
		userAgent:        config.UserAgent,
		maxRetryAttempts: config.RetryAttempts,
	}
}

func (f *Fetcher) Close() error {
	return f.httpClient.Close()
}

// StatusError is returned when the remote server answers with a non-success status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to download file: http %d %s from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// EnsureAvailable makes sure the decoded cache of the direction exists.
// An existing decoded cache is trusted without contacting the remote source.
func (f *Fetcher) EnsureAvailable(ctx context.Context, direction lexicon.Direction) error {
	lex := f.selector.Resolve(direction)

	exists, err := f.store.Exists(ctx, lex.DecodedCachePath)
	if err != nil {
		return fmt.Errorf("store.Exists(%s) > %w", lex.DecodedCachePath, err)
	}
	if exists {
		slog.Default().Debug("lexicon cache found", "lexicon", lex.ID, "path", lex.DecodedCachePath)
		return nil
	}

	raw, err := f.rawDocument(ctx, lex)
	if err != nil {
		return err
	}

	slog.Default().Info("starting lexicon conversion", "lexicon", direction.String(), "format", lex.Format)
	dictionary, err := lexicon.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("lexicon.Decode(%s) > %w", lex.RawCachePath, err)
	}
	contents, err := lexicon.Serialize(dictionary, lex.Format)
	if err != nil {
		return fmt.Errorf("lexicon.Serialize > %w", err)
	}
	if err := f.store.Write(ctx, lex.DecodedCachePath, contents); err != nil {
		return fmt.Errorf("store.Write(%s) > %w", lex.DecodedCachePath, err)
	}
	slog.Default().Debug("wrote decoded lexicon",
		"lexicon", lex.ID,
		"path", lex.DecodedCachePath,
		"words", len(dictionary.Words))
	return nil
}

// EnsureAll prepares every direction, stopping at the first failure.
func (f *Fetcher) EnsureAll(ctx context.Context) error {
	missing := make([]lexicon.Direction, 0, len(lexicon.AllDirections))
	for _, direction := range lexicon.AllDirections {
		lex := f.selector.Resolve(direction)
		exists, err := f.store.Exists(ctx, lex.DecodedCachePath)
		if err != nil {
			return fmt.Errorf("store.Exists(%s) > %w", lex.DecodedCachePath, err)
		}
		if !exists {
			missing = append(missing, direction)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	slog.Default().Info("preparing lexicon data, this will only happen once...")
	for _, direction := range missing {
		if err := f.EnsureAvailable(ctx, direction); err != nil {
			return fmt.Errorf("f.EnsureAvailable(%s) > %w", direction, err)
		}
	}
	slog.Default().Info("preparations done.")
	return nil
}

// rawDocument returns the cached raw document, downloading it when it is absent.
func (f *Fetcher) rawDocument(ctx context.Context, lex lexicon.Lexicon) ([]byte, error) {
	exists, err := f.store.Exists(ctx, lex.RawCachePath)
	if err != nil {
		return nil, fmt.Errorf("store.Exists(%s) > %w", lex.RawCachePath, err)
	}
	if exists {
		raw, err := f.store.Read(ctx, lex.RawCachePath)
		if err != nil {
			return nil, fmt.Errorf("store.Read(%s) > %w", lex.RawCachePath, err)
		}
		return raw, nil
	}

	slog.Default().Info("downloading xml data for lexicon", "lexicon", lex.Direction.String(), "url", lex.RemoteURL)
	raw, err := f.download(ctx, lex.RemoteURL)
	if err != nil {
		return nil, err
	}
	if err := f.store.Write(ctx, lex.RawCachePath, raw); err != nil {
		return nil, fmt.Errorf("store.Write(%s) > %w", lex.RawCachePath, err)
	}
	slog.Default().Debug("xml file downloaded", "lexicon", lex.ID, "path", lex.RawCachePath, "bytes", len(raw))
	return raw, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	var attempt uint
	options := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(f.maxRetryAttempts + 1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	}
	if f.retryDelay > 0 {
		options = append(options, retry.Delay(f.retryDelay))
	}
	if err := retry.Do(
		func() error {
			if attempt > 0 {
				slog.Default().Info("retrying lexicon download", "attempt", attempt, "url", url)
			}
			attempt++

			contents, err := f.get(ctx, url)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = contents
			return nil
		},
		options...,
	); err != nil {
		return nil, fmt.Errorf("%w: %w", lexicon.ErrNetwork, err)
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	request := f.httpClient.R().SetContext(ctx)
	if f.userAgent != "" {
		request.SetHeader("User-Agent", f.userAgent)
	}
	res, err := request.Get(url)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if !res.IsSuccess() {
		return nil, &StatusError{StatusCode: res.StatusCode(), URL: url}
	}
	return res.Bytes(), nil
}

// isRetryableError retries transport failures, server errors and rate limiting.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError || statusErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}
