// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help contributors understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// ## Storage Interfaces
//
//   - Store: Flat key-value persistence (internal/kvstore/store.go)
//   - Pinger: Backend health for /health (internal/http/stores.go)
//
// ## Translation Interfaces
//
//   - AI: Prompt in, raw model text out (internal/translator/translator.go)
//   - Dictionary: Offline word table (internal/translator/translator.go)
//   - CredentialSource: Bearer token for the gateway (internal/gateway/gateway.go)
//   - Generator: Upstream model behind /api/gemini (internal/llm/llm.go)
//
// ## Gamification Interfaces
//
//   - XPLedger, StatsRecorder, AchievementChecker, StreakUpdater, ProgressTracker
//     (internal/services/interfaces.go)
//
// # Adding a New Store Backend
//
//  1. Implement kvstore.Store in internal/kvstore/
//
//     type EtcdStore struct {
//         client *clientv3.Client
//     }
//
//     func (s *EtcdStore) Get(key string) (string, bool, error)
//     func (s *EtcdStore) Set(key, value string) error
//     func (s *EtcdStore) Delete(key string) error
//     func (s *EtcdStore) Keys(prefix string) ([]string, error)
//
//     var _ Store = (*EtcdStore)(nil)
//
//  2. Add a backend name in internal/config/constants.go
//
//  3. Open it in entrypoint.OpenStore
//
// # Adding a New Offline Dictionary
//
// The translator consults a single offline dictionary for its language:
//
//	dict := dictionary.New("de", map[string]string{"house": "Haus"})
//	tr := translator.New(gw, c, dict, logger)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
