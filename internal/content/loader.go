// Package content fetches the public portfolio data and guarantees the
// caller always gets something renderable: any source that fails, returns
// a non-OK status, or decodes into an unusable shape is replaced by the
// bundled snapshot for that source independently of the other two.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// API shapes of the public read endpoints, trimmed to what the renderer
// consumes.

type Contact struct {
	Email    string `json:"email,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
	Calendly string `json:"calendly,omitempty"`
}

type SkillGroup struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

type Profile struct {
	Name        string       `json:"name"`
	RoleTitle   string       `json:"roleTitle"`
	HeroTagline string       `json:"heroTagline"`
	ValueLine   string       `json:"valueLine"`
	About       string       `json:"about"`
	HeroImage   string       `json:"heroImage"`
	Skills      []SkillGroup `json:"skills"`
	Contacts    Contact      `json:"contacts"`
}

type Links struct {
	Live   string `json:"live,omitempty"`
	GitHub string `json:"github,omitempty"`
	Video  string `json:"video,omitempty"`
}

type Media struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
}

type Project struct {
	Title       string   `json:"title"`
	Problem     string   `json:"problem"`
	Solution    string   `json:"solution"`
	Stack       []string `json:"stack"`
	Features    []string `json:"features"`
	UXDecisions []string `json:"uxDecisions"`
	Links       Links    `json:"links"`
	Media       []Media  `json:"media"`
	SortOrder   int      `json:"sortOrder"`
	Visibility  string   `json:"visibility"`
}

type CaseStudy struct {
	Title             string   `json:"title"`
	Vision            string   `json:"vision"`
	Problem           string   `json:"problem"`
	PlannedFeatures   []string `json:"plannedFeatures"`
	ArchitectureNotes []string `json:"architectureNotes"`
	Challenges        []string `json:"challenges"`
	Media             []Media  `json:"media"`
	Status            string   `json:"status"`
	SortOrder         int      `json:"sortOrder"`
}

// Snapshot is the loaded content set plus per-source liveness: a false
// flag means that source is the bundled fallback.
type Snapshot struct {
	Profile     Profile
	Projects    []Project
	CaseStudies []CaseStudy

	ProfileLive     bool
	ProjectsLive    bool
	CaseStudiesLive bool
}

// Load fetches the three public sources concurrently and waits for all of
// them. Failures are never surfaced; the worst case is a snapshot built
// entirely from the bundled defaults.
func Load(ctx context.Context, client *http.Client, base string) Snapshot {
	if client == nil {
		client = http.DefaultClient
	}

	snap := Snapshot{
		Profile:     FallbackProfile,
		Projects:    FallbackProjects,
		CaseStudies: FallbackCaseStudies,
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		var profile Profile
		if err := fetchJSON(ctx, client, base+"/api/profile/public", &profile); err == nil && profile.Name != "" {
			snap.Profile = profile
			snap.ProfileLive = true
		}
	}()

	go func() {
		defer wg.Done()
		var projects []Project
		if err := fetchJSON(ctx, client, base+"/api/projects/public", &projects); err == nil && len(projects) > 0 {
			snap.Projects = projects
			snap.ProjectsLive = true
		}
	}()

	go func() {
		defer wg.Done()
		var caseStudies []CaseStudy
		if err := fetchJSON(ctx, client, base+"/api/case-studies/public", &caseStudies); err == nil && len(caseStudies) > 0 {
			snap.CaseStudies = caseStudies
			snap.CaseStudiesLive = true
		}
	}()

	wg.Wait()

	return snap
}

func fetchJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
