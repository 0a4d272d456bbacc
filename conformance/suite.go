// Copyright 2025 The VeriBLAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package conformance

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/veriblas/veriblas/blas"
)

// CaseSpec is the YAML form of one conformance case. Pointer fields
// distinguish "absent, use default" from an explicit zero, so suites can
// still probe zero-increment and zero-batch behavior.
type CaseSpec struct {
	Function string `yaml:"function"`
	Uplo     string `yaml:"uplo"`
	Trans    string `yaml:"trans"`

	M int `yaml:"m"`
	N int `yaml:"n"`
	K int `yaml:"k"`

	Lda int `yaml:"lda"`
	Ldb int `yaml:"ldb"`
	Ldc int `yaml:"ldc"`

	IncX       *int `yaml:"incx"`
	IncY       *int `yaml:"incy"`
	BatchCount *int `yaml:"batch_count"`

	Alpha     *float64 `yaml:"alpha"`
	AlphaImag float64  `yaml:"alpha_imag"`
	Beta      *float64 `yaml:"beta"`

	Iters int   `yaml:"iters"`
	Seed  int64 `yaml:"seed"`

	// Expect is "pass" (default) or "invalid" for cases that must be
	// rejected by argument sanity checking.
	Expect string `yaml:"expect"`
}

// Suite is a named list of cases.
type Suite struct {
	Name  string     `yaml:"name"`
	Cases []CaseSpec `yaml:"cases"`
}

// LoadSuite reads a YAML suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: read suite: %w", err)
	}
	return ParseSuite(data)
}

// ParseSuite parses YAML suite data.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("conformance: parse suite: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("conformance: suite has no cases")
	}
	return &s, nil
}

// Arguments converts the YAML case into harness arguments, applying
// defaults: unit increments, one batch entry, alpha=1, beta=0.
func (c CaseSpec) Arguments() (Arguments, error) {
	args := Arguments{
		M: c.M, N: c.N, K: c.K,
		Lda: c.Lda, Ldb: c.Ldb, Ldc: c.Ldc,
		IncX: 1, IncY: 1, BatchCount: 1,
		Alpha: 1, AlphaImag: c.AlphaImag,
		Uplo: blas.Upper, Trans: blas.NoTrans,
		Iters: c.Iters, Seed: c.Seed,
	}
	if c.IncX != nil {
		args.IncX = *c.IncX
	}
	if c.IncY != nil {
		args.IncY = *c.IncY
	}
	if c.BatchCount != nil {
		args.BatchCount = *c.BatchCount
	}
	if c.Alpha != nil {
		args.Alpha = *c.Alpha
	}
	if c.Beta != nil {
		args.Beta = *c.Beta
	}
	if c.Uplo != "" {
		u, err := blas.ParseUplo(c.Uplo[0])
		if err != nil {
			return args, err
		}
		args.Uplo = u
	}
	if c.Trans != "" {
		t, err := blas.ParseTranspose(c.Trans[0])
		if err != nil {
			return args, err
		}
		args.Trans = t
	}
	return args, nil
}

// expectInvalid reports whether the case is a negative test.
func (c CaseSpec) expectInvalid() bool {
	return c.Expect == "invalid"
}

// Summary aggregates a suite run.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Reports []*Report
}

// Ok reports whether every case ended as expected.
func (s *Summary) Ok() bool {
	return s.Failed == 0
}

// Run executes every case in the suite against eng, logging per-case
// outcomes. Case failures are collected in the summary, not returned as
// errors; only malformed suites error out.
func (s *Suite) Run(eng blas.Engine, log zerolog.Logger) (*Summary, error) {
	sum := &Summary{}
	for i, spec := range s.Cases {
		sum.Total++

		args, err := spec.Arguments()
		if err != nil {
			return nil, fmt.Errorf("conformance: case %d: %w", i, err)
		}

		var rep *Report
		switch spec.Function {
		case FuncSbmvBatched:
			rep, err = RunSbmvBatched(eng, args)
		case FuncHer2k:
			rep, err = RunHer2k(eng, args)
		default:
			return nil, fmt.Errorf("conformance: case %d: unknown function %q", i, spec.Function)
		}

		switch {
		case errors.Is(err, blas.ErrInvalidValue):
			if spec.expectInvalid() {
				sum.Passed++
				log.Info().Int("case", i).Str("function", spec.Function).Msg("case rejected as expected")
			} else {
				sum.Failed++
				log.Error().Int("case", i).Err(err).Msg("case rejected unexpectedly")
			}
		case err != nil:
			sum.Failed++
			log.Error().Int("case", i).Err(err).Msg("case errored")
		case spec.expectInvalid():
			sum.Failed++
			log.Error().Int("case", i).Msg("case accepted but expected invalid")
		case rep.Passed():
			sum.Passed++
			sum.Reports = append(sum.Reports, rep)
			log.Info().Int("case", i).Str("function", spec.Function).Str("engine", eng.Name()).
				Stringer("args", args).
				Float64("gflops", rep.GFlops()).Dur("engine_time", rep.EngineTime).Msg("case passed")
		default:
			sum.Failed++
			sum.Reports = append(sum.Reports, rep)
			log.Error().Int("case", i).
				Int("errors", rep.Check.Errors).
				Int("checked", rep.Check.Checked).
				Float64("max_abs", rep.Check.MaxAbs).
				Float64("max_rel", rep.Check.MaxRel).
				Int("first_bad", rep.Check.FirstBad).
				Msg("case failed tolerance check")
		}
	}
	return sum, nil
}
