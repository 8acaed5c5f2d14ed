package module

import (
	"strconv"
	"time"

	"statcard/internal/platform/config"
	statssvc "statcard/internal/services/api/stats/service"
)

// FromConfig reads with STATCARD_ prefix
func FromConfig(cfg config.Conf) statssvc.Options {
	c := cfg.Prefix("STATCARD_")
	d := statssvc.DefaultOptions()

	top, _ := strconv.Atoi(c.MayEnum("TOP_LANGUAGES", strconv.Itoa(d.TopLanguages), "5", "8"))

	return statssvc.Options{
		RepoLimit:       c.MayInt("REPO_LIMIT", d.RepoLimit),
		IncludeForks:    c.MayBool("INCLUDE_FORKS", false),
		TopLanguages:    top,
		LangConcurrency: c.MayInt("LANG_CONCURRENCY", d.LangConcurrency),
		ContribDays:     c.MayInt("CONTRIB_DAYS", d.ContribDays),
		UserTimeout:     c.MayDuration("USER_TIMEOUT", d.UserTimeout),
		ReposTimeout:    c.MayDuration("REPOS_TIMEOUT", d.ReposTimeout),
		LangTimeout:     c.MayDuration("LANG_TIMEOUT", d.LangTimeout),
		GraphQLTimeout:  c.MayDuration("GRAPHQL_TIMEOUT", d.GraphQLTimeout),
	}
}

// CacheMaxAge reads STATCARD_CACHE_MAX_AGE; 0 (the default) marks stats responses uncacheable
func CacheMaxAge(cfg config.Conf) time.Duration {
	return cfg.Prefix("STATCARD_").MayDuration("CACHE_MAX_AGE", 0)
}
