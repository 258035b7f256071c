package clipdata

import (
	"context"
	"path"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// ResourceScheme is the URI scheme GResource bundled files are addressed with.
const ResourceScheme = "resource://"

// NormalizerOptions configures a Normalizer. Assets may be nil, in which case no flags are
// materialized and every flag_path is empty.
type NormalizerOptions struct {
	Plan     DialPlan
	Assets   AssetStore
	Prefix   string
	AssetDir string
	Logger   *zap.Logger
	Observer Observer
}

// Normalizer turns upstream countries into canonical records.
type Normalizer struct {
	plan     DialPlan
	assets   AssetStore
	prefix   string
	assetDir string
	log      *zap.Logger
	notify   notifier
}

func NewNormalizer(opts NormalizerOptions) *Normalizer {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Plan.Exceptions == nil {
		opts.Plan = DefaultDialPlan()
	}
	if opts.AssetDir == "" {
		opts.AssetDir = DefaultAssetDir
	}
	return &Normalizer{
		plan:     opts.Plan,
		assets:   opts.Assets,
		prefix:   opts.Prefix,
		assetDir: opts.AssetDir,
		log:      opts.Logger,
		notify:   notifier{stats: newRunStats(0), observer: opts.Observer, log: opts.Logger},
	}
}

// IsKnownCountry reports whether code parses as an ISO 3166-1 region that denotes a country,
// as opposed to a grouping or a private-use code.
func IsKnownCountry(code string) bool {
	region, err := language.ParseRegion(code)
	return err == nil && region.IsCountry()
}

// FlagPath builds the resource URI of a materialized flag file.
func (n *Normalizer) FlagPath(filename string) string {
	return ResourceScheme + path.Join(n.prefix, n.assetDir, filename)
}

// Normalize converts one upstream country. ok is false when the country has no dial code and
// must be dropped. The second return value is the materialized flag filename, if any.
func (n *Normalizer) Normalize(ctx context.Context, up UpstreamCountry) (rec CountryRecord, filename string, ok bool) {
	dialCode, ok := n.plan.Format(up.DialRoot, up.DialSuffixes, up.Code)
	if !ok {
		n.log.Debug("dropping country without dial code", zap.String("code", up.Code), zap.String("name", up.Name))
		n.notify.recordDropped(up.Code, "no dial code")
		return CountryRecord{}, "", false
	}
	if !IsKnownCountry(up.Code) {
		n.log.Warn("code is not a recognised ISO 3166 country", zap.String("code", up.Code), zap.String("name", up.Name))
		n.notify.unknownRegion(up.Code)
	}

	rec = CountryRecord{
		Name:     up.Name,
		Code:     up.Code,
		DialCode: dialCode,
		Emoji:    FlagEmoji(up.Code),
	}
	if n.assets == nil {
		return rec, "", true
	}
	filename, err := n.assets.Materialize(ctx, up.FlagURL, up.Code)
	if err != nil {
		n.log.Warn("failed to download flag", zap.String("code", up.Code), zap.String("url", up.FlagURL), zap.Error(err))
		n.notify.assetFailed(up.Code, err)
		return rec, "", true
	}
	if filename != "" {
		rec.FlagPath = n.FlagPath(filename)
		n.notify.assetMaterialized(up.Code, filename)
	}
	return rec, filename, true
}

// NormalizeAll sorts the upstream list by display name and normalizes each entry in that order.
// It returns the kept records and the flag filenames materialized along the way.
func (n *Normalizer) NormalizeAll(ctx context.Context, upstream []UpstreamCountry) ([]CountryRecord, []string) {
	sorted := make([]UpstreamCountry, len(upstream))
	copy(sorted, upstream)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	records := make([]CountryRecord, 0, len(sorted))
	var materialized []string
	for _, up := range sorted {
		rec, filename, ok := n.Normalize(ctx, up)
		if !ok {
			continue
		}
		if filename != "" {
			materialized = append(materialized, filename)
		}
		records = append(records, rec)
	}
	return records, materialized
}

// Stats returns a snapshot of the outcomes seen so far.
func (n *Normalizer) Stats() RunStats {
	return n.notify.stats.snapshot()
}
