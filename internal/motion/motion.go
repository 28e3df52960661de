// Package motion handles the reduced-motion preference and the intro fade-in.
package motion

import (
	"strconv"
	"strings"
	"time"
)

// EnvReducedMotion is read by Reduced.
const EnvReducedMotion = "PLEXUS_REDUCED_MOTION"

// Reduced reports whether the environment asks for reduced motion.
func Reduced(getenv func(string) string) bool {
	v := strings.TrimSpace(getenv(EnvReducedMotion))
	if v == "" {
		return false
	}
	if strings.EqualFold(v, "reduce") {
		return true
	}
	on, err := strconv.ParseBool(v)
	return err == nil && on
}

// Intro fades the scene in after a short delay.
type Intro struct {
	Delay    time.Duration
	Duration time.Duration
	Skip     bool
}

// NewIntro returns the default fade: 100ms of nothing, then one second
// easing to full opacity. skip disables it.
func NewIntro(skip bool) Intro {
	return Intro{Delay: 100 * time.Millisecond, Duration: time.Second, Skip: skip}
}

// Opacity returns the scene opacity elapsed after start.
func (in Intro) Opacity(elapsed time.Duration) float64 {
	if in.Skip {
		return 1
	}
	t := elapsed - in.Delay
	if t <= 0 {
		return 0
	}
	if in.Duration <= 0 || t >= in.Duration {
		return 1
	}
	return ease(float64(t) / float64(in.Duration))
}

// Done reports whether the fade has finished.
func (in Intro) Done(elapsed time.Duration) bool {
	return in.Opacity(elapsed) >= 1
}

// ease approximates the CSS "ease" timing curve.
func ease(x float64) float64 {
	return x * x * (3 - 2*x)
}
