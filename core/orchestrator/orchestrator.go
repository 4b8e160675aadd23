package orchestrator

import (
	"fmt"
	"time"

	"remap/core/analysis"
	"remap/core/cache"
	"remap/core/compliance"
	"remap/core/config"
	"remap/core/logger"
	"remap/core/mapping"
	"remap/core/models"
	"remap/core/project"
	"remap/core/report"
	"remap/core/rewriter"
)

// Strategy names the consolidation approach recorded on every result.
const Strategy = "canonical-consolidation"

// Orchestrator sequences the rewriting pipeline over one project root:
// load analysis, generate mappings, pre-flight compliance, per-file
// rewrite and validation, batch save, report. It exclusively owns the
// TransformationResult for its run; callers must serialize runs on the
// same root externally.
type Orchestrator struct {
	root   string
	cfg    *config.Config
	opts   models.RewriteOptions
	policy mapping.Policy
}

func New(root string, cfg *config.Config, opts models.RewriteOptions) *Orchestrator {
	return &Orchestrator{
		root: root,
		cfg:  cfg,
		opts: opts,
		policy: mapping.Policy{
			Markers:  cfg.CanonicalMarkers,
			UIMarker: cfg.UIMarker,
		},
	}
}

// Run executes the full pipeline. Stage failures before any file is
// touched (load, mapping, compliance) abort the run as FAILED; per-file
// failures are recorded and the run continues. The returned result is
// always non-nil.
func (o *Orchestrator) Run() (result *models.TransformationResult, err error) {
	result = models.NewTransformationResult(Strategy)

	defer func() {
		if r := recover(); r != nil {
			o.fail(result)
			err = models.NewStageError(models.CodeImportRewritingFailed,
				fmt.Sprintf("unexpected failure during import rewriting: %v", r), nil)
		}
	}()

	logger.Info("Starting import rewriting run %s (dry-run: %v)", result.ID, o.opts.DryRun)

	analysisReport, err := analysis.LoadAnalysis(o.root)
	if err != nil {
		o.fail(result)
		return result, err
	}

	mappings, err := mapping.GenerateMappings(analysisReport, o.opts, o.policy)
	if err != nil {
		o.fail(result)
		return result, err
	}

	if o.opts.ValidateImports {
		if _, err := compliance.ValidateCanonicalCompliance(mappings, o.policy); err != nil {
			o.fail(result)
			return result, err
		}
	}

	pc := cache.Load(o.root)
	proj, err := project.Load(o.root, o.cfg.Exclude, o.policy.Markers, pc)
	if err != nil {
		o.fail(result)
		return result, models.NewStageError(models.CodeImportRewritingFailed,
			"failed to load project tree", err)
	}

	result.Errors = append(result.Errors, proj.LoadErrors...)
	result.TotalFiles = proj.Len() + len(proj.LoadErrors)

	for _, relPath := range proj.Paths() {
		f, _ := proj.File(relPath)

		count, rerr := rewriter.RewriteImports(f, mappings)
		if rerr != nil {
			// Per-file failure: record and continue with the next file.
			result.Errors = append(result.Errors, models.ImportValidationError{
				File:     relPath,
				Message:  fmt.Sprintf("rewrite failed: %v", rerr),
				Severity: models.SeverityError,
			})
			continue
		}

		if count > 0 {
			result.ModifiedFiles++
			result.TotalImportsRewritten += count
			result.ChangedFiles = append(result.ChangedFiles, relPath)
		}

		if o.opts.ValidateImports {
			findings, verr := rewriter.ValidateImportPaths(f, o.policy)
			if verr != nil {
				result.Errors = append(result.Errors, models.ImportValidationError{
					File:     relPath,
					Message:  fmt.Sprintf("validation failed: %v", verr),
					Severity: models.SeverityError,
				})
				continue
			}
			result.Errors = append(result.Errors, findings...)
		}
	}

	if !o.opts.DryRun && result.TotalImportsRewritten > 0 {
		written, cerr := proj.Commit()
		if cerr != nil {
			o.fail(result)
			return result, models.NewStageError(models.CodeImportRewritingFailed,
				"failed to persist rewritten files", cerr)
		}
		logger.Info("Persisted %d rewritten file(s)", written)
	}

	if result.TotalImportsRewritten > 0 {
		result.Status = models.StatusCompleted
	} else {
		result.Status = models.StatusSkipped
	}
	result.EndTime = time.Now()

	if perr := pc.Persist(); perr != nil {
		logger.Debug("Failed to persist parse cache: %v", perr)
	}
	pc.LogStats()

	if o.opts.GenerateReport {
		// The report gets an immutable snapshot; its failure never
		// changes the run's terminal status.
		if path, rerr := report.GenerateImportReport(o.root, *result, mappings); rerr != nil {
			logger.Error("Report generation failed: %v", rerr)
		} else {
			logger.Info("Report written to %s", path)
		}
	}

	logger.Info("Run %s finished: %s (%d imports rewritten in %d files)",
		result.ID, result.Status, result.TotalImportsRewritten, result.ModifiedFiles)

	return result, nil
}

func (o *Orchestrator) fail(result *models.TransformationResult) {
	result.Status = models.StatusFailed
	result.EndTime = time.Now()
}
