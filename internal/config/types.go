package config

import (
	"errors"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultContentDir   = "docs"
	DefaultOutput       = ".mdxkit"
	DefaultNavFile      = "_nav.json"
	DefaultAPIGroupName = "API Reference"
	DefaultTheme        = "github-dark"

	defaultDisplayLimit  = 50
	defaultDisplayFormat = "table"

	specsDirName = "specs"

	validationTagExcludedWith = "excluded_with"
	validationTagRequiredWith = "required_without"
)

var specPrefixRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*(/[a-z0-9][a-z0-9_-]*)*$`)

func DefaultPatterns() []string {
	return []string{"**/*.mdx", "**/*.md"}
}

// DefaultExcludes are never treated as documentation pages.
func DefaultExcludes() []string {
	return []string{
		"node_modules/**",
		".git/**",
		"snippets/**",
		"**/README.md",
	}
}

type Config struct {
	ContentDir   string          `koanf:"content_dir"`
	Patterns     []string        `koanf:"patterns"`
	Exclude      []string        `koanf:"exclude"`
	Output       string          `koanf:"output"`
	NavFile      string          `koanf:"nav_file"`
	Nav          Nav             `koanf:"nav"`
	APIGroupName string          `koanf:"api_group_name"`
	Site         Site            `koanf:"site"`
	Highlight    Highlight       `koanf:"highlight"`
	Display      Display         `koanf:"display"`
	OpenAPI      map[string]Spec `koanf:"openapi"`
	ConfigDir    string          `koanf:"-"`
}

// Nav is the sidebar layout. It is read from the nav file when present,
// otherwise from the [nav] table.
type Nav struct {
	Tabs   []string   `koanf:"tabs"   json:"tabs,omitempty"`
	Groups []NavGroup `koanf:"groups" json:"groups"         validate:"dive"`
}

// HasTabs reports whether the sidebar is split into more than one tab.
func (n Nav) HasTabs() bool {
	return len(n.Tabs) > 1
}

// GroupsForTab returns the groups filed under tab.
func (n Nav) GroupsForTab(tab string) []NavGroup {
	var groups []NavGroup
	for _, g := range n.Groups {
		if g.Tab == tab {
			groups = append(groups, g)
		}
	}
	return groups
}

type NavGroup struct {
	Group string   `koanf:"group" json:"group"         validate:"required"`
	Tab   string   `koanf:"tab"   json:"tab,omitempty"`
	Pages []string `koanf:"pages" json:"pages"`
}

type Site struct {
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
	BaseURL     string `koanf:"base_url"    validate:"omitempty,url"`
}

type Highlight struct {
	Theme string `koanf:"theme"`
}

type Display struct {
	DefaultLimit int    `koanf:"default_limit" validate:"gte=0"`
	Format       string `koanf:"format"        validate:"omitempty,oneof=table json"`
}

// Spec is one OpenAPI document, mounted under its table key as a URL
// prefix. Exactly one of File and URL is set.
type Spec struct {
	File     string `koanf:"file"     validate:"required_without=URL,excluded_with=URL"`
	URL      string `koanf:"url"      validate:"omitempty,url"`
	Filename string `koanf:"filename"`
}

// IsRemote reports whether the spec is fetched rather than read locally.
func (s Spec) IsRemote() bool {
	return s.URL != ""
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("spec_prefix", func(fl validator.FieldLevel) bool {
		return isValidPrefix(fl.Field().String())
	})

	return v
}

func (c *Config) ApplyDefaults() {
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if len(c.Patterns) == 0 {
		c.Patterns = DefaultPatterns()
	}
	c.Exclude = mergeExcludes(DefaultExcludes(), c.Exclude)

	if c.APIGroupName == "" {
		c.APIGroupName = DefaultAPIGroupName
	}
	if c.Highlight.Theme == "" {
		c.Highlight.Theme = DefaultTheme
	}
	if c.Display.DefaultLimit == 0 {
		c.Display.DefaultLimit = defaultDisplayLimit
	}
	if c.Display.Format == "" {
		c.Display.Format = defaultDisplayFormat
	}

	for prefix, spec := range c.OpenAPI {
		if spec.IsRemote() && spec.Filename == "" {
			spec.Filename = filenameFromURL(prefix, spec.URL)
		}
		c.OpenAPI[prefix] = spec
	}
}

func (c *Config) Validate() error {
	v := newValidator()

	if valErr := v.Struct(c); valErr != nil {
		return mapValidationError("", Spec{}, valErr)
	}

	for _, prefix := range c.Prefixes() {
		if err := v.Var(prefix, "spec_prefix"); err != nil {
			return oops.
				Code("CONFIG_INVALID").
				With("prefix", prefix).
				Hint("Use lowercase path segments such as \"api-reference\" or \"api/v2\"").
				Errorf("invalid openapi prefix %q", prefix)
		}

		spec := c.OpenAPI[prefix]
		if valErr := v.Struct(spec); valErr != nil {
			return mapValidationError(prefix, spec, valErr)
		}
	}

	return nil
}

func mapValidationError(prefix string, spec Spec, valErr error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(valErr, &validationErrors) || len(validationErrors) == 0 {
		return oops.
			Code("CONFIG_INVALID").
			With("prefix", prefix).
			Wrapf(valErr, "validating config")
	}

	fe := validationErrors[0]
	field := strings.ToLower(fe.Field())

	switch {
	case fe.Tag() == validationTagRequiredWith && field == "file":
		return oops.
			Code("CONFIG_INVALID").
			With("prefix", prefix).
			Hint("Set file to a local spec or url to a remote one").
			Errorf("openapi spec %q has neither 'file' nor 'url'", prefix)

	case fe.Tag() == validationTagExcludedWith && field == "file":
		return oops.
			Code("CONFIG_INVALID").
			With("prefix", prefix).
			With("file", spec.File).
			With("url", spec.URL).
			Hint("Remove either file or url").
			Errorf("openapi spec %q has both 'file' and 'url'", prefix)

	case fe.Tag() == "url" && field == "url":
		return oops.
			Code("CONFIG_INVALID").
			With("prefix", prefix).
			With("url", spec.URL).
			Errorf("invalid url %q for openapi spec %q", spec.URL, prefix)

	case fe.Tag() == "url" && field == "baseurl":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "site.base_url").
			Hint("Use an absolute URL such as https://docs.example.com").
			Errorf("invalid site base_url")

	case fe.Tag() == "required" && field == "group":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "nav.groups.group").
			Hint("Give every [[nav.groups]] entry a group name").
			Errorf("missing 'group' in nav group")

	case fe.Tag() == "oneof" && field == "format":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "display.format").
			Hint("Supported formats: table, json").
			Errorf("unknown display format %q", fe.Value())

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("prefix", prefix).
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q", field)
	}
}

// Prefixes returns the configured OpenAPI prefixes in sorted order.
func (c *Config) Prefixes() []string {
	prefixes := make([]string, 0, len(c.OpenAPI))
	for prefix := range c.OpenAPI {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}

// SpecsDir is where fetched specs are cached.
func (c *Config) SpecsDir() string {
	return filepath.Join(c.OutputDir(), specsDirName)
}

// OutputDir is the output directory resolved against the config directory.
func (c *Config) OutputDir() string {
	return c.resolve(c.Output)
}

// ContentRoot is the content directory resolved against the config directory.
func (c *Config) ContentRoot() string {
	return c.resolve(c.ContentDir)
}

// NavPath returns the nav file to read. An unset nav_file points at
// _nav.json in the content directory.
func (c *Config) NavPath() string {
	if c.NavFile == "" {
		return filepath.Join(c.ContentRoot(), DefaultNavFile)
	}
	return c.resolve(c.NavFile)
}

// SpecPath is where the spec for prefix is read from: the local file, or the
// cached copy of a remote one.
func (c *Config) SpecPath(prefix string) string {
	spec := c.OpenAPI[prefix]
	if spec.IsRemote() {
		return filepath.Join(c.SpecsDir(), spec.Filename)
	}
	return c.resolve(spec.File)
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(c.ConfigDir, p))
}

func isValidPrefix(prefix string) bool {
	return specPrefixRegex.MatchString(prefix)
}

func filenameFromURL(prefix, rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err == nil {
		baseName := path.Base(parsed.Path)
		if baseName != "" && baseName != "." && baseName != "/" {
			return baseName
		}
	}

	return strings.ReplaceAll(prefix, "/", "-") + ".yaml"
}

// mergeExcludes returns the sorted union of both lists.
func mergeExcludes(global, local []string) []string {
	if len(global) == 0 && len(local) == 0 {
		return nil
	}

	merged := slices.Concat(global, local)
	slices.Sort(merged)
	return slices.Compact(merged)
}
