// Package validate implements the optional pre-merge link validation pass.
// It asks a resolution collaborator to batch pre-resolve every link-map URL
// across both lists, probes whatever stays unresolved with an HTTP
// existence check, and filters every link map down to the surviving set.
//
// Validation failures never propagate: malformed URLs, unsupported
// schemes, timeouts, network errors, and cancellation all degrade to
// "URL invalid".
package validate

import (
	"context"
	"strings"
	"sync"

	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/constants"
	"github.com/modsmith/modmerge/pkg/logging"
	"github.com/modsmith/modmerge/pkg/similarity"

	"github.com/modsmith/modmerge/internal/probe"
)

// Resolver is the resolution collaborator: it pre-resolves download
// filenames for every URL in the component's link map. The sequential flag
// selects one-at-a-time resolution over collaborator-controlled
// concurrency.
type Resolver interface {
	PreResolve(ctx context.Context, comp *components.Component, excluded []string, sequential bool) (map[string][]string, error)
}

// Prober answers whether anything responds at a URL.
type Prober interface {
	Exists(ctx context.Context, url string) bool
}

// Validator filters link maps down to URLs that either resolved to at
// least one filename or answered an HTTP existence probe.
type Validator struct {
	resolver  Resolver
	failed    Prober // probes URLs whose resolution failed outright
	slow      Prober // probes likely slow hosts with a tighter timeout
	slowHosts []string
}

// Option configures a Validator.
type Option func(*Validator)

// WithProbers overrides the existence-probe clients.
func WithProbers(failed, slow Prober) Option {
	return func(v *Validator) {
		v.failed = failed
		v.slow = slow
	}
}

// WithSlowHosts overrides the hosts treated as slow file lockers.
func WithSlowHosts(hosts ...string) Option {
	return func(v *Validator) {
		v.slowHosts = hosts
	}
}

// defaultSlowHosts are file lockers known to answer probes slowly or rate
// limit automated clients.
var defaultSlowHosts = []string{
	"mega.nz",
	"mediafire.com",
	"gamefront.com",
	"moddb.com",
}

// New creates a Validator around the given resolution collaborator.
func New(resolver Resolver, opts ...Option) *Validator {
	v := &Validator{
		resolver:  resolver,
		failed:    probe.New(constants.FailedProbeTimeout),
		slow:      probe.New(constants.SlowHostProbeTimeout),
		slowHosts: defaultSlowHosts,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// FilterLists computes the valid URL set across all lists and removes
// every other URL from every component's link map, in place.
func (v *Validator) FilterLists(ctx context.Context, sequential bool, lists ...[]*components.Component) {
	urls := collectURLs(lists)
	if len(urls) == 0 {
		return
	}

	valid := v.validURLs(ctx, urls, sequential)

	log := logging.Ctx(ctx)
	for _, list := range lists {
		for _, c := range list {
			for url := range c.Links {
				if valid[url] {
					continue
				}
				log.Info().
					Str("component", c.Name).
					Str("url", url).
					Msg("removing unvalidated link")
				delete(c.Links, url)
			}
		}
	}
}

// validURLs runs the two-pass check: batch resolution first, then an HTTP
// existence probe for whatever stayed unresolved.
func (v *Validator) validURLs(ctx context.Context, urls []string, sequential bool) map[string]bool {
	valid := make(map[string]bool, len(urls))

	// One throwaway component carries the whole URL union through the
	// collaborator's batch resolution.
	links := make(map[string]components.FileMap, len(urls))
	for _, url := range urls {
		links[url] = components.FileMap{}
	}
	carrier := &components.Component{Name: "link-validation", Links: links}

	log := logging.Ctx(ctx)
	results, err := v.resolver.PreResolve(ctx, carrier, nil, sequential)
	if err != nil {
		// Degrade to an empty resolved set; the probe pass decides.
		log.Debug().Err(err).Msg("batch resolution failed")
		results = nil
	}

	for url, names := range results {
		for _, name := range names {
			if strings.TrimSpace(name) != "" {
				valid[url] = true
				break
			}
		}
	}

	// Split unresolved URLs into likely slow hosts vs failed, and probe
	// each group with its own timeout class.
	var slowURLs, failedURLs []string
	for _, url := range urls {
		if valid[url] {
			continue
		}
		if v.isSlowHost(url) {
			slowURLs = append(slowURLs, url)
		} else {
			failedURLs = append(failedURLs, url)
		}
	}

	var mu sync.Mutex
	check := func(url string, p Prober) {
		if p.Exists(ctx, url) {
			mu.Lock()
			valid[url] = true
			mu.Unlock()
			return
		}
		log.Debug().Str("url", url).Msg("existence probe failed")
	}

	if sequential {
		for _, url := range failedURLs {
			check(url, v.failed)
		}
		for _, url := range slowURLs {
			check(url, v.slow)
		}
	} else {
		var wg sync.WaitGroup
		for _, url := range failedURLs {
			wg.Add(1)
			go func(u string) {
				defer wg.Done()
				check(u, v.failed)
			}(url)
		}
		for _, url := range slowURLs {
			wg.Add(1)
			go func(u string) {
				defer wg.Done()
				check(u, v.slow)
			}(url)
		}
		wg.Wait()
	}

	return valid
}

// isSlowHost reports whether the URL's host matches the slow-locker list.
func (v *Validator) isSlowHost(url string) bool {
	host := similarity.Host(url)
	if host == "" {
		return false
	}
	for _, slow := range v.slowHosts {
		if host == slow || strings.HasSuffix(host, "."+slow) {
			return true
		}
	}
	return false
}

// collectURLs returns the deduplicated union of link-map URLs across the
// lists, in deterministic order.
func collectURLs(lists [][]*components.Component) []string {
	seen := make(map[string]struct{})
	var urls []string
	for _, list := range lists {
		for _, c := range list {
			for _, url := range c.URLs() {
				if strings.TrimSpace(url) == "" {
					continue
				}
				if _, ok := seen[url]; ok {
					continue
				}
				seen[url] = struct{}{}
				urls = append(urls, url)
			}
		}
	}
	return urls
}
