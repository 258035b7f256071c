package clipdata

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
)

// CountryPipelineOptions wires the country pipeline's collaborators.
type CountryPipelineOptions struct {
	Config   Config
	Fetcher  Fetcher
	FS       FileSystem
	Logger   *zap.Logger
	Observer Observer
}

// CountryPipeline fetches remote country data, writes countries.json and the flag SVGs, and
// synchronizes the GResource manifest with the SVG directory.
type CountryPipeline struct {
	cfg      Config
	fetcher  Fetcher
	fs       FileSystem
	log      *zap.Logger
	observer Observer
}

func NewCountryPipeline(opts CountryPipelineOptions) *CountryPipeline {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &CountryPipeline{
		cfg:      opts.Config.WithDefaults(),
		fetcher:  opts.Fetcher,
		fs:       opts.FS,
		log:      opts.Logger,
		observer: opts.Observer,
	}
}

// ResolvePrefix reads the gresource prefix from the manifest, falling back to the configured
// default when the manifest is missing, unreadable or has no prefix.
func (p *CountryPipeline) ResolvePrefix(manifestPath string) string {
	fallback := p.cfg.Countries.ResourcePrefix
	content, err := p.fs.ReadFile(manifestPath)
	if err != nil {
		if isNotExist(err) {
			p.log.Warn("manifest not found, using default prefix", zap.String("path", manifestPath), zap.String("prefix", fallback))
		} else {
			p.log.Error("failed to read manifest prefix", zap.String("path", manifestPath), zap.Error(err))
		}
		return fallback
	}
	prefix, ok := DiscoverPrefix(content)
	if !ok {
		return fallback
	}
	return prefix
}

// Run executes the pipeline. A transport failure aborts before anything is written. A missing
// manifest is reported in CountryReport.ManifestErr and does not fail the run.
func (p *CountryPipeline) Run(ctx context.Context) (CountryReport, error) {
	cc := p.cfg.Countries
	jsonDir := cc.Resolve(cc.JSONDir)
	assetDir := cc.Resolve(cc.AssetDir)
	manifestPath := cc.Resolve(p.cfg.Manifest.Path)

	p.log.Info("fetching country data", zap.String("url", cc.APIURL))
	raw, err := p.fetcher.Fetch(ctx, cc.APIURL)
	if err != nil {
		p.log.Error("failed to fetch country data", zap.String("url", cc.APIURL), zap.Error(err))
		return CountryReport{}, newPipelineError(KindTransport, cc.APIURL, "fetch country data", err)
	}
	upstream, err := ParseUpstream(raw)
	if err != nil {
		p.log.Error("unusable country data", zap.String("url", cc.APIURL), zap.Error(err))
		return CountryReport{}, newPipelineError(KindTransport, cc.APIURL, "decode country data", err)
	}
	if len(upstream) == 0 {
		p.log.Error("no country data received", zap.String("url", cc.APIURL))
		return CountryReport{}, newPipelineError(KindTransport, cc.APIURL, "no country data", nil)
	}

	for _, dir := range []string{jsonDir, assetDir} {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return CountryReport{}, err
		}
	}

	prefix := p.ResolvePrefix(manifestPath)
	p.log.Info("using gresource prefix", zap.String("prefix", prefix))

	normalizer := NewNormalizer(NormalizerOptions{
		Assets:   &FlagDownloader{Fetcher: p.fetcher, FS: p.fs, Dir: assetDir},
		Prefix:   prefix,
		AssetDir: filepath.ToSlash(filepath.Clean(cc.AssetDir)),
		Logger:   p.log,
		Observer: p.observer,
	})
	p.log.Info("processing countries and downloading flags", zap.Int("countries", len(upstream)))
	records, materialized := normalizer.NormalizeAll(ctx, upstream)

	report := CountryReport{
		Records:      len(records),
		Dropped:      len(upstream) - len(records),
		Materialized: materialized,
		JSONPath:     filepath.Join(jsonDir, cc.JSONFile),
		Prefix:       prefix,
		Stats:        normalizer.Stats(),
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return report, err
	}
	if err := p.fs.WriteFile(report.JSONPath, out, 0o644); err != nil {
		return report, err
	}
	p.log.Info("saved country JSON", zap.String("path", report.JSONPath), zap.Int("records", len(records)))

	assets, err := ListAssets(p.fs, assetDir)
	if err != nil {
		return report, err
	}
	if err := SyncManifestFile(p.fs, manifestPath, p.cfg.Layout(), assets); err != nil {
		p.log.Error("manifest synchronization skipped", zap.String("path", manifestPath), zap.Error(err))
		report.ManifestErr = err
		return report, nil
	}
	report.ManifestSynced = true
	p.log.Info("manifest updated", zap.String("path", manifestPath), zap.Int("assets", len(assets)))
	return report, nil
}
