package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/audaroky/internal/achievements"
	"github.com/mrlokans/audaroky/internal/cache"
	"github.com/mrlokans/audaroky/internal/cli"
	"github.com/mrlokans/audaroky/internal/credentials"
	"github.com/mrlokans/audaroky/internal/database"
	"github.com/mrlokans/audaroky/internal/dictionary"
	"github.com/mrlokans/audaroky/internal/gateway"
	"github.com/mrlokans/audaroky/internal/http"
	"github.com/mrlokans/audaroky/internal/kvstore"
	"github.com/mrlokans/audaroky/internal/llm"
	"github.com/mrlokans/audaroky/internal/progress"
	"github.com/mrlokans/audaroky/internal/scheduler"
	"github.com/mrlokans/audaroky/internal/services"
	"github.com/mrlokans/audaroky/internal/streak"
	"github.com/mrlokans/audaroky/internal/tasks"
	"github.com/mrlokans/audaroky/internal/translator"
	"github.com/mrlokans/audaroky/internal/xp"
)

// =============================================================================
// Storage
// =============================================================================

var _ kvstore.Store = (*database.Database)(nil)
var _ kvstore.Store = (*kvstore.SQLStore)(nil)
var _ kvstore.Store = (*kvstore.RedisStore)(nil)
var _ kvstore.Store = (*kvstore.MemoryStore)(nil)

var _ http.Pinger = (*database.Database)(nil)
var _ http.Pinger = (*kvstore.SQLStore)(nil)
var _ http.Pinger = (*kvstore.RedisStore)(nil)

// =============================================================================
// Translation Client
// =============================================================================

var _ gateway.CredentialSource = (*credentials.Store)(nil)
var _ translator.AI = (*gateway.Client)(nil)
var _ translator.Dictionary = (*dictionary.Offline)(nil)
var _ llm.Generator = (*llm.OpenAICompatible)(nil)
var _ services.Translator = (*translator.Translator)(nil)
var _ services.PairSource = (*dictionary.Offline)(nil)
var _ tasks.WordTranslator = (*translator.Translator)(nil)
var _ scheduler.Pruner = (*cache.Cache)(nil)

// =============================================================================
// Gamification
// =============================================================================

var _ services.XPLedger = (*xp.Ledger)(nil)
var _ services.StatsRecorder = (*achievements.StatsStore)(nil)
var _ services.AchievementChecker = (*achievements.Engine)(nil)
var _ services.StreakUpdater = (*streak.Tracker)(nil)
var _ services.ProgressTracker = (*progress.Engine)(nil)
var _ services.CredentialChecker = (*credentials.Store)(nil)
var _ services.CredentialChecker = credentials.WithServerKey{}
var _ achievements.Ledger = (*xp.Ledger)(nil)
var _ achievements.XPSource = (*xp.Ledger)(nil)
var _ streak.StatsStore = (*achievements.StatsStore)(nil)

// =============================================================================
// HTTP and CLI
// =============================================================================

var _ http.ReaderService = (*services.Reader)(nil)
var _ http.CredentialStore = (*credentials.Store)(nil)
var _ http.LevelStore = (*progress.Engine)(nil)
var _ http.XPFeed = (*xp.Ledger)(nil)
var _ cli.WordTranslator = (*services.Reader)(nil)
var _ cli.DashboardSource = (*services.Reader)(nil)
var _ cli.KeyStore = (*credentials.Store)(nil)
