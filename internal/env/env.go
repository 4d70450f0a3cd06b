// Package env reads the process environment and the logical processor count.
package env

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/microsoft/hcsshim/winhandle/internal/log"
)

// Source supplies raw environment data. System reads the live process.
type Source interface {
	LookupEnv(name string) (string, bool)
	Environ() []string
	LogicalCPUs() (int, error)
}

type system struct{}

// System is the Source backed by the running process.
var System Source = system{}

func (system) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }
func (system) Environ() []string                    { return os.Environ() }
func (system) LogicalCPUs() (int, error)            { return cpu.Counts(true) }

// Query answers environment questions against a Source.
type Query struct {
	src    Source
	logger zerolog.Logger
}

// New returns a Query over src, or over System when src is nil.
func New(src Source) *Query {
	if src == nil {
		src = System
	}
	return &Query{src: src, logger: log.WithComponent("env")}
}

// Get returns the value of name. A missing variable is ("", false), never an
// error. A variable set to the empty string is ("", true).
func (q *Query) Get(name string) (string, bool) {
	v, ok := q.src.LookupEnv(name)
	q.logger.Debug().
		Str("name", name).
		Bool("set", ok).
		Str("value", Mask(name, v)).
		Msg("environment lookup")
	return v, ok
}

// ProcessorCount returns the number of logical processors available. It is
// never below 1: a failed or non-positive reading yields 1.
func (q *Query) ProcessorCount() int {
	n, err := q.src.LogicalCPUs()
	if err != nil || n < 1 {
		q.logger.Debug().Err(err).Int("reported", n).Msg("processor count unavailable, using 1")
		return 1
	}
	return n
}

// Environ returns every variable of the environment. Entries without "=" are
// skipped. Windows keeps per-drive working directories in variables whose
// names start with "=" (such as "=C:"); those are kept under their full name.
func (q *Query) Environ() map[string]string {
	raw := q.src.Environ()
	out := make(map[string]string, len(raw))
	for _, kv := range raw {
		// Search from index 1 so a leading "=" stays part of the name.
		i := strings.Index(kv[min(1, len(kv)):], "=")
		if i < 0 {
			continue
		}
		i += min(1, len(kv))
		out[kv[:i]] = kv[i+1:]
	}
	q.logger.Debug().Int("count", len(out)).Msg("environment enumerated")
	return out
}

var sensitiveKeywords = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"apikey",
	"api_key",
	"credential",
	"auth",
}

// Sensitive reports whether name looks like it holds a credential.
func Sensitive(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Mask returns value, or "***" when name is Sensitive and value is set.
func Mask(name, value string) string {
	if value != "" && Sensitive(name) {
		return "***"
	}
	return value
}
