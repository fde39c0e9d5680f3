// Package update checks whether a newer hunttech release exists.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ReleasesURL is the GitHub endpoint for the latest release.
const ReleasesURL = "https://api.github.com/repos/matheuskafuri/hunttech/releases/latest"

// Result holds the outcome of a version check.
type Result struct {
	LatestVersion string
	URL           string
}

type ghRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check asks the releases endpoint whether a newer version is out. Any
// failure is logged at debug level and reported as nil.
func Check(ctx context.Context, currentVersion string) *Result {
	return CheckURL(ctx, ReleasesURL, currentVersion)
}

// CheckURL is Check against an arbitrary releases endpoint.
func CheckURL(ctx context.Context, endpoint, currentVersion string) *Result {
	log := logrus.WithField("component", "update")
	current := strings.TrimPrefix(currentVersion, "v")
	if current == "" || current == "dev" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.WithError(err).Debug("building update request")
		return nil
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("update check failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Debug("update check failed")
		return nil
	}

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		log.WithError(err).Debug("decoding release")
		return nil
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if latest == "" || latest == current {
		return nil
	}

	log.WithField("latest", latest).Info("update available")
	return &Result{LatestVersion: latest, URL: release.HTMLURL}
}
