package clipdata

import (
	"bytes"
	"context"
	"path/filepath"

	"go.uber.org/zap"
)

// TemplatePipelineOptions wires the translation template pipeline.
type TemplatePipelineOptions struct {
	Config   Config
	FS       FileSystem
	Logger   *zap.Logger
	Observer Observer
}

// TemplatePipeline discovers JSON data files, extracts their translatable strings and writes
// a POT template.
type TemplatePipeline struct {
	cfg       Config
	fs        FileSystem
	log       *zap.Logger
	extractor *Extractor
	notify    notifier
}

func NewTemplatePipeline(opts TemplatePipelineOptions) *TemplatePipeline {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	cfg := opts.Config.WithDefaults()
	return &TemplatePipeline{
		cfg:       cfg,
		fs:        opts.FS,
		log:       opts.Logger,
		extractor: NewExtractor(cfg.Policy(), opts.Logger),
		notify:    notifier{stats: newRunStats(0), observer: opts.Observer, log: opts.Logger},
	}
}

// Run scans inputDir (non-recursively) and writes the template to outPath. A missing or
// non-directory input is a KindUsage error. When no eligible files exist the report has
// NothingToDo set and no file is written.
func (p *TemplatePipeline) Run(ctx context.Context, outPath string, inputDir string) (TemplateReport, error) {
	info, err := p.fs.Stat(inputDir)
	if err != nil {
		if isNotExist(err) {
			return TemplateReport{}, newPipelineError(KindUsage, inputDir, "input directory does not exist", nil)
		}
		return TemplateReport{}, newPipelineError(KindUsage, inputDir, "stat input directory", err)
	}
	if !info.IsDir() {
		return TemplateReport{}, newPipelineError(KindUsage, inputDir, "input path is not a directory", nil)
	}

	p.log.Info("scanning directory", zap.String("dir", inputDir))
	files, skipped, err := p.extractor.DiscoverFiles(p.fs, inputDir, p.cfg.Extraction.Pattern)
	if err != nil {
		return TemplateReport{}, err
	}
	for _, name := range skipped {
		p.notify.fileSkipped(name)
	}
	report := TemplateReport{Files: files, Skipped: skipped, OutputPath: outPath}
	if len(files) == 0 {
		report.NothingToDo = true
		return report, nil
	}
	p.log.Info("found JSON files to process", zap.Int("files", len(files)))

	set := StringSet{}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		name := filepath.Base(file)
		added, err := p.extractor.ExtractFile(p.fs, file, set)
		if err != nil {
			p.log.Error("failed to process data file", zap.String("file", name), zap.Error(err))
			p.notify.fileFailed(name, err)
			report.Failed = append(report.Failed, name)
			continue
		}
		p.log.Info("extracted strings", zap.String("file", name), zap.Int("new", added))
		p.notify.fileExtracted(name, added)
	}

	var buf bytes.Buffer
	// The reference lists every discovered file, including ones that failed to parse.
	total, err := EmitTemplate(&buf, set, files, p.cfg.NowFn(), p.cfg.Template)
	if err != nil {
		return report, err
	}
	if dir := filepath.Dir(outPath); dir != "" {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return report, err
		}
	}
	if err := p.fs.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return report, err
	}
	report.Strings = total
	p.log.Info("generated template", zap.String("path", outPath), zap.Int("strings", total))
	return report, nil
}

// Stats returns a snapshot of the outcomes seen so far.
func (p *TemplatePipeline) Stats() RunStats {
	return p.notify.stats.snapshot()
}
