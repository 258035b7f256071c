package clipdata

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

const overflowStatKey = "__overflow__"

// RunStats is a snapshot of per-item outcomes for one pipeline run.
type RunStats struct {
	DroppedRecords map[string]int
	UnknownRegions map[string]int
	AssetFailures  map[string]int
	FileFailures   map[string]int
	SkippedFiles   map[string]int
	Materialized   int
	StringsAdded   int
}

type runStats struct {
	mu             sync.Mutex
	droppedRecords map[string]int
	unknownRegions map[string]int
	assetFailures  map[string]int
	fileFailures   map[string]int
	skippedFiles   map[string]int
	materialized   int
	stringsAdded   int
	maxKeys        int
}

func newRunStats(maxKeys int) *runStats {
	if maxKeys <= 0 {
		maxKeys = 512
	}
	return &runStats{
		droppedRecords: map[string]int{},
		unknownRegions: map[string]int{},
		assetFailures:  map[string]int{},
		fileFailures:   map[string]int{},
		skippedFiles:   map[string]int{},
		maxKeys:        maxKeys,
	}
}

func sanitizeStatKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "unknown"
	}
	if len(key) > 120 {
		return key[:120]
	}
	return key
}

func (s *runStats) increment(target map[string]int, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key = sanitizeStatKey(key)
	if _, exists := target[key]; !exists {
		if _, hasOverflow := target[overflowStatKey]; hasOverflow {
			if len(target) >= s.maxKeys {
				key = overflowStatKey
			}
		} else if len(target) >= s.maxKeys-1 {
			key = overflowStatKey
		}
	}
	target[key]++
}

func (s *runStats) OnRecordDropped(code string, reason string) {
	s.increment(s.droppedRecords, code)
}

func (s *runStats) OnUnknownRegion(code string) {
	s.increment(s.unknownRegions, code)
}

func (s *runStats) OnAssetMaterialized(code string, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materialized++
}

func (s *runStats) OnAssetFailed(code string, err error) {
	s.increment(s.assetFailures, code)
}

func (s *runStats) OnFileExtracted(name string, added int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stringsAdded += added
}

func (s *runStats) OnFileSkipped(name string) {
	s.increment(s.skippedFiles, name)
}

func (s *runStats) OnFileFailed(name string, err error) {
	s.increment(s.fileFailures, name)
}

func (s *runStats) snapshot() RunStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	copyMap := func(input map[string]int) map[string]int {
		output := make(map[string]int, len(input))
		for k, v := range input {
			output[k] = v
		}
		return output
	}

	return RunStats{
		DroppedRecords: copyMap(s.droppedRecords),
		UnknownRegions: copyMap(s.unknownRegions),
		AssetFailures:  copyMap(s.assetFailures),
		FileFailures:   copyMap(s.fileFailures),
		SkippedFiles:   copyMap(s.skippedFiles),
		Materialized:   s.materialized,
		StringsAdded:   s.stringsAdded,
	}
}

// notifier fans events out to the run stats and an optional user observer. A panicking
// observer is logged and never aborts the run.
type notifier struct {
	stats    *runStats
	observer Observer
	log      *zap.Logger
}

func (n notifier) safeCall(fn func(Observer)) {
	fn(n.stats)
	if n.observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			n.log.Error("observer panicked", zap.Any("panic", r))
		}
	}()
	fn(n.observer)
}

func (n notifier) recordDropped(code, reason string) {
	n.safeCall(func(o Observer) { o.OnRecordDropped(code, reason) })
}

func (n notifier) unknownRegion(code string) {
	n.safeCall(func(o Observer) { o.OnUnknownRegion(code) })
}

func (n notifier) assetMaterialized(code, filename string) {
	n.safeCall(func(o Observer) { o.OnAssetMaterialized(code, filename) })
}

func (n notifier) assetFailed(code string, err error) {
	n.safeCall(func(o Observer) { o.OnAssetFailed(code, err) })
}

func (n notifier) fileExtracted(name string, added int) {
	n.safeCall(func(o Observer) { o.OnFileExtracted(name, added) })
}

func (n notifier) fileSkipped(name string) {
	n.safeCall(func(o Observer) { o.OnFileSkipped(name) })
}

func (n notifier) fileFailed(name string, err error) {
	n.safeCall(func(o Observer) { o.OnFileFailed(name, err) })
}
