package aws

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Profile is a named profile from the shared config or credentials file.
type Profile struct {
	Name   string
	Region string // from the config file if set
	SSO    bool   // configured for IAM Identity Center
	Source string // "credentials" or "config"
}

var (
	credentialsSectionRe = regexp.MustCompile(`^\[([^\]]+)\]$`)
	configSectionRe      = regexp.MustCompile(`^\[profile\s+([^\]]+)\]$`)
	configDefaultRe      = regexp.MustCompile(`^\[default\]$`)
	settingRe            = regexp.MustCompile(`^\s*([A-Za-z0-9_]+)\s*=\s*(.*)$`)
)

// ListProfiles reads profiles from the shared credentials and config files. The SDK's
// AWS_SHARED_CREDENTIALS_FILE and AWS_CONFIG_FILE overrides are honoured. "default" sorts
// first, the rest alphabetically.
func ListProfiles() ([]Profile, error) {
	byName := make(map[string]*Profile)

	credPath, configPath, err := sharedFiles()
	if err != nil {
		return nil, err
	}

	credProfiles, err := parseINIFile(credPath, "credentials", false)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	for i := range credProfiles {
		byName[credProfiles[i].Name] = &credProfiles[i]
	}

	configProfiles, err := parseINIFile(configPath, "config", true)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	for _, p := range configProfiles {
		existing, ok := byName[p.Name]
		if !ok {
			byName[p.Name] = &p
			continue
		}
		if existing.Region == "" {
			existing.Region = p.Region
		}
		existing.SSO = existing.SSO || p.SSO
	}

	profiles := make([]Profile, 0, len(byName))
	for _, p := range byName {
		profiles = append(profiles, *p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Name == "default" {
			return true
		}
		if profiles[j].Name == "default" {
			return false
		}
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}

// FindProfile returns the named profile, if configured.
func FindProfile(name string) (Profile, bool) {
	profiles, err := ListProfiles()
	if err != nil {
		return Profile{}, false
	}

	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

func sharedFiles() (credPath, configPath string, err error) {
	credPath = os.Getenv("AWS_SHARED_CREDENTIALS_FILE")
	configPath = os.Getenv("AWS_CONFIG_FILE")
	if credPath != "" && configPath != "" {
		return credPath, configPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", err
	}
	if credPath == "" {
		credPath = filepath.Join(home, ".aws", "credentials")
	}
	if configPath == "" {
		configPath = filepath.Join(home, ".aws", "config")
	}
	return credPath, configPath, nil
}

// parseINIFile parses an AWS INI-style shared file. Config files name sections
// "[profile x]" except for "[default]"; credentials files use "[x]".
func parseINIFile(path, source string, isConfigFile bool) ([]Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var (
		profiles []Profile
		current  *Profile
	)
	start := func(name string) {
		if current != nil {
			profiles = append(profiles, *current)
		}
		current = &Profile{Name: strings.TrimSpace(name), Source: source}
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			switch {
			case !isConfigFile:
				if m := credentialsSectionRe.FindStringSubmatch(line); len(m) == 2 {
					start(m[1])
					continue
				}
			case configDefaultRe.MatchString(line):
				start("default")
				continue
			default:
				if m := configSectionRe.FindStringSubmatch(line); len(m) == 2 {
					start(m[1])
					continue
				}
			}
			// sso-session and services sections are not profiles
			if current != nil {
				profiles = append(profiles, *current)
			}
			current = nil
			continue
		}

		if current == nil {
			continue
		}
		m := settingRe.FindStringSubmatch(line)
		if len(m) != 3 {
			continue
		}
		switch strings.ToLower(m[1]) {
		case "region":
			current.Region = strings.TrimSpace(m[2])
		case "sso_start_url", "sso_session":
			current.SSO = true
		}
	}

	if current != nil {
		profiles = append(profiles, *current)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
