// Package stats derives the dashboard numbers from a fetched profile. Every
// function is pure and deterministic.
package stats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrijs2005/profiledash/internal/client/models"
)

// TopProjectsLimit bounds the ranked project list.
const TopProjectsLimit = 10

const (
	modulePath    = "/bh-module/"
	moduleMarker  = "bh-module"
	piscineJSPath = "/piscine-js/"
	projectPrefix = "project-"
)

var piscinePath = regexp.MustCompile(`/piscine-[^/]+/`)

// ProjectXP is the XP accumulated by one project.
type ProjectXP struct {
	Project string
	XP      int64
}

// TotalXP sums positive xp transactions earned inside the module, leaving
// out the JS piscine.
func TotalXP(txs []models.Transaction) int64 {
	var total int64
	for _, t := range txs {
		if t.Type != models.TransactionXP || t.Amount <= 0 {
			continue
		}
		if strings.Contains(t.Path, piscineJSPath) {
			continue
		}
		if !strings.Contains(t.Path, modulePath) {
			continue
		}
		total += t.Amount
	}
	return total
}

// TopProjectsXP groups module xp by project, excluding every piscine, and
// returns at most TopProjectsLimit entries by descending XP. Ties keep the
// order in which the projects first appeared.
func TopProjectsXP(txs []models.Transaction) []ProjectXP {
	index := make(map[string]int)
	projects := make([]ProjectXP, 0)

	for _, t := range txs {
		if t.Type != models.TransactionXP || !strings.Contains(t.Path, moduleMarker) || piscinePath.MatchString(t.Path) {
			continue
		}
		name := ProjectName(t.Path)
		i, ok := index[name]
		if !ok {
			i = len(projects)
			index[name] = i
			projects = append(projects, ProjectXP{Project: name})
		}
		projects[i].XP += t.Amount
	}

	sort.SliceStable(projects, func(a, b int) bool { return projects[a].XP > projects[b].XP })

	if len(projects) > TopProjectsLimit {
		projects = projects[:TopProjectsLimit]
	}
	return projects
}

// ProjectName turns ".../project-ascii-art" into "ascii art".
func ProjectName(path string) string {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	name = strings.TrimPrefix(name, projectPrefix)
	return strings.ReplaceAll(name, "-", " ")
}

// SumXP adds up a project list.
func SumXP(projects []ProjectXP) int64 {
	var sum int64
	for _, p := range projects {
		sum += p.XP
	}
	return sum
}

// RoundedTotalXP rounds xp to whole kilobytes.
func RoundedTotalXP(xp int64) int64 {
	return int64(jsRound(float64(xp)/1000)) * 1000
}
