package workload

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/deque/pkg/list"
	"hop.computer/deque/pkg/must"
	"hop.computer/deque/pkg/thunks"
)

// Result summarises a finished run.
type Result struct {
	Seed     uint64
	Elements int
	Front    bool

	FillDuration     time.Duration
	MixedDuration    time.Duration
	TeardownDuration time.Duration

	Mixed Stats

	// MixedLen is the length of the mixed-phase list before teardown.
	MixedLen int
	Verified bool
}

// PerPush is the mean cost of one fill-phase push.
func (r *Result) PerPush() time.Duration {
	if r.Elements == 0 {
		return 0
	}
	return r.FillDuration / time.Duration(r.Elements)
}

// Runner executes a workload in three phases: a sequential fill, a generated
// mix of pushes and pops on a second list, and a teardown of both lists.
type Runner struct {
	Config Config
	Log    *logrus.Entry
}

// NewRunner returns a Runner for c. A nil log uses the standard logger.
func NewRunner(c Config, log *logrus.Entry) *Runner {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Runner{
		Config: c,
		Log:    log,
	}
}

// Run executes the workload.
func (r *Runner) Run() (*Result, error) {
	c := r.Config
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Seed == 0 {
		c.Seed = must.Seed()
	}
	log := r.Log.WithField("seed", c.Seed)

	res := &Result{
		Seed:     c.Seed,
		Elements: c.Elements,
		Front:    c.Front,
		Verified: c.Verify,
	}

	log.WithFields(logrus.Fields{
		"elements": c.Elements,
		"front":    c.Front,
	}).Debug("fill: starting")
	filled := list.New[int]()
	start := thunks.TimeNow()
	Fill(filled, c.Elements, c.Front)
	res.FillDuration = thunks.TimeNow().Sub(start)
	if c.Verify {
		if err := CheckFill(filled, c.Elements, c.Front); err != nil {
			return res, errors.Wrap(err, "fill")
		}
	}
	log.WithFields(logrus.Fields{
		"len":      filled.Len(),
		"duration": res.FillDuration,
		"per_push": res.PerPush(),
	}).Info("fill: done")

	mixed := list.New[int]()
	if c.MixedOps > 0 {
		ops := Generate(c.Seed, c.MixedOps)
		var model *[]int
		if c.Verify {
			model = new([]int)
		}
		log.WithField("ops", len(ops)).Debug("mixed: starting")
		start = thunks.TimeNow()
		stats, err := Apply(mixed, ops, model)
		res.MixedDuration = thunks.TimeNow().Sub(start)
		res.Mixed = stats
		if err != nil {
			return res, errors.Wrap(err, "mixed")
		}
		res.MixedLen = mixed.Len()
		log.WithFields(logrus.Fields{
			"pushes":     stats.Pushes,
			"pops":       stats.Pops,
			"empty_pops": stats.EmptyPops,
			"len":        mixed.Len(),
			"duration":   res.MixedDuration,
		}).Info("mixed: done")
	}

	log.Debug("teardown: starting")
	start = thunks.TimeNow()
	filled.Clear()
	mixed.Clear()
	res.TeardownDuration = thunks.TimeNow().Sub(start)
	if !filled.IsEmpty() || !mixed.IsEmpty() {
		return res, errors.Wrap(ErrMismatch, "teardown left items behind")
	}
	log.WithField("duration", res.TeardownDuration).Info("teardown: done")

	return res, nil
}
