package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known applicant tracking system.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformAshby is the Ashby ATS platform
	PlatformAshby Platform = "ashby"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// platformProfile describes how to find a platform's posting body.
type platformProfile struct {
	platform Platform
	hosts    []string
	content  []string
	noise    []string
}

var platformProfiles = []platformProfile{
	{
		platform: PlatformGreenhouse,
		hosts:    []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", ".voluntary-self-id-wrapper", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		hosts:    []string{"lever.co"},
		content:  []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:    []string{".apply-section", ".lever-application-form", ".posting-apply", ".posting-headline .posting-categories"},
	},
	{
		platform: PlatformWorkday,
		hosts:    []string{"workday.com", "myworkdayjobs.com"},
		content:  []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']", "[data-automation-id='similarJobs']", ".application-section"},
	},
	{
		platform: PlatformAshby,
		hosts:    []string{"ashbyhq.com"},
		content:  []string{"[class*='_descriptionText']", "[class*='_description']", "main"},
		noise:    []string{"[class*='_applicationForm']", "[class*='_navigation']"},
	},
}

// commonNoiseSelectors strips application forms, legal notices and share widgets.
var commonNoiseSelectors = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",
	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",
	".social-share",
	".share-buttons",
	".social-links",
	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

// DetectPlatform identifies the job board platform from a URL host.
func DetectPlatform(urlStr string) Platform {
	if profile, ok := lookupProfile(urlStr); ok {
		return profile.platform
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors for the platform, most specific first.
func PlatformContentSelectors(platform Platform) []string {
	for _, profile := range platformProfiles {
		if profile.platform == platform {
			return append([]string(nil), profile.content...)
		}
	}
	return JobPostingSelectors()
}

// PlatformNoiseSelectors returns the common noise selectors plus the platform's own.
func PlatformNoiseSelectors(platform Platform) []string {
	selectors := append([]string(nil), commonNoiseSelectors...)
	for _, profile := range platformProfiles {
		if profile.platform == platform {
			selectors = append(selectors, profile.noise...)
		}
	}
	return selectors
}

func lookupProfile(urlStr string) (platformProfile, bool) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return platformProfile{}, false
	}
	host := strings.ToLower(parsed.Hostname())
	for _, profile := range platformProfiles {
		for _, suffix := range profile.hosts {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return profile, true
			}
		}
	}
	return platformProfile{}, false
}
