// Package pipeline runs fetch, normalization, aggregation and serialization
// for each requested country.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"holidaygen/internal/aggregator"
	"holidaygen/internal/localization"
	"holidaygen/internal/logger"
	"holidaygen/internal/models"
	"holidaygen/internal/normalizer"
	"holidaygen/internal/plistio"
	"holidaygen/internal/provider"
	"holidaygen/pkg/metadata"
)

// ErrFingerprintMismatch is returned when a written file does not read back
// with the fingerprint it was written with.
var ErrFingerprintMismatch = errors.New("written file fingerprint mismatch")

// Options configures a Pipeline.
type Options struct {
	Provider  provider.Provider
	Processor *normalizer.Processor
	Writer    *plistio.Writer
	Resolver  *localization.Resolver
	Logger    *logger.Logger
	Now       func() time.Time
	StartYear int
	EndYear   int
	Verify    bool
}

// Pipeline generates holiday files one country at a time.
type Pipeline struct {
	opts Options
	log  *logger.Logger
}

// Result describes a generated country file.
type Result struct {
	Country  string
	File     *models.CountryHolidayFile
	Metadata *metadata.Metadata
}

// New creates a pipeline. Provider and Writer are required.
func New(opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	if opts.Processor == nil {
		opts.Processor = normalizer.NewProcessor(opts.Logger)
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Pipeline{opts: opts, log: opts.Logger}
}

// Aggregate fetches and normalizes every year of the window for
// countryCode and folds the result into an aggregate.
func (p *Pipeline) Aggregate(countryCode string) (*aggregator.Aggregate, error) {
	years, err := provider.FetchRange(p.opts.Provider, countryCode, p.opts.StartYear, p.opts.EndYear)
	if err != nil {
		return nil, err
	}

	agg := aggregator.New()

	for _, y := range years {
		agg.AddAll(p.opts.Processor.ProcessYear(countryCode, y.Year, y.Holidays))
	}

	return agg, nil
}

// Generate builds and writes the holiday file for countryCode. Nothing is
// written when fetching fails.
func (p *Pipeline) Generate(countryCode string) (*Result, error) {
	code := strings.ToUpper(countryCode)
	log := p.log.With("country", code)

	log.Info("Generating holiday file", "years", fmt.Sprintf("[%d, %d)", p.opts.StartYear, p.opts.EndYear))

	agg, err := p.Aggregate(code)
	if err != nil {
		return nil, err
	}

	var keys aggregator.KeyFunc
	if p.opts.Resolver != nil {
		keys = p.opts.Resolver.Key
	}

	file, err := agg.ToFile(p.opts.Now(), keys)
	if err != nil {
		return nil, fmt.Errorf("build %s holiday file: %w", code, err)
	}

	path, err := p.opts.Writer.Write(code, file)
	if err != nil {
		return nil, err
	}

	meta := metadata.Describe(path, file)

	if p.opts.Verify {
		if err := verifyWritten(path, meta.Hash); err != nil {
			return nil, err
		}
	}

	log.Info("Wrote holiday file",
		"path", meta.Path, "holidays", meta.Holidays, "dates", meta.Dates, "fingerprint", meta.Hash)

	return &Result{Country: code, File: file, Metadata: meta}, nil
}

func verifyWritten(path, hash string) error {
	written, err := plistio.Read(path)
	if err != nil {
		return err
	}

	if !metadata.Verify(written, hash) {
		return fmt.Errorf("%w: %s", ErrFingerprintMismatch, path)
	}

	return nil
}

// Run generates every country in order. A failing country is logged and
// skipped; the returned error joins all failures.
func (p *Pipeline) Run(countryCodes []string) ([]*Result, error) {
	var (
		results []*Result
		errs    []error
	)

	for _, code := range countryCodes {
		res, err := p.Generate(code)
		if err != nil {
			var invalid *provider.InvalidCountryError
			if errors.As(err, &invalid) {
				p.log.Error("Entered invalid country code, skipping", "country", invalid.Code)
			} else {
				p.log.Error("Failed to generate holiday file", "country", code, "error", err)
			}

			errs = append(errs, fmt.Errorf("%s: %w", code, err))

			continue
		}

		results = append(results, res)
	}

	return results, errors.Join(errs...)
}
