package finder

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// paramsValidate is the validator instance for Params.
var paramsValidate = validator.New()

// Params is the immutable tuning surface of a search.
//
// Alpha and Kappa drive subpath qualification; MinSup, MaxSup, MinSize and
// MinLen are acceptance filters applied to every merged region. CaseCtrl
// switches the pair priority to favour regions whose case and control
// support differ most. UseRC is accepted and ignored: reverse-complement
// matching is not implemented.
//
// A zero MaxSup would reject every region, so Validate requires MaxSup ≥ 1;
// build Params with DefaultParams and override the filters you need.
type Params struct {
	Alpha    float64 `validate:"gte=0,lte=1"`
	Kappa    int     `validate:"gte=0"`
	MinSup   int     `validate:"gte=0"`
	MaxSup   int     `validate:"gte=1,gtefield=MinSup"`
	MinSize  int     `validate:"gte=0"`
	MinLen   int     `validate:"gte=0"`
	CaseCtrl bool
	UseRC    bool
}

// DefaultParams returns Params with the given alpha and kappa and the
// default filters MinSup=1, MaxSup=math.MaxInt, MinSize=1, MinLen=1.
func DefaultParams(alpha float64, kappa int) Params {
	return Params{
		Alpha:   alpha,
		Kappa:   kappa,
		MinSup:  1,
		MaxSup:  math.MaxInt,
		MinSize: 1,
		MinLen:  1,
	}
}

// Validate checks ranges, MaxSup ≥ 1 and MinSup ≤ MaxSup.
//
// Errors:
//   - ErrInvalidParams wrapping the validator's field report.
func (p Params) Validate() error {
	if math.IsNaN(p.Alpha) {
		return fmt.Errorf("%w: alpha is NaN", ErrInvalidParams)
	}
	if err := paramsValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	return nil
}

// accepts reports whether r passes every acceptance filter.
func (p Params) accepts(support, avgLength, size int) bool {
	return support >= p.MinSup && support <= p.MaxSup &&
		avgLength >= p.MinLen && size >= p.MinSize
}
