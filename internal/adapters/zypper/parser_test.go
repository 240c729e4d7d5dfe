package zypper_test

import (
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kmpinstall/internal/adapters/zypper"
	"go.trai.ch/kmpinstall/internal/core/domain"
)

func parse(lines ...string) *domain.Plan {
	p := zypper.NewParser(domain.DefaultKMPInfix)
	for _, line := range lines {
		p.Feed(line)
	}
	p.Flush()
	return p.Plan()
}

func TestParser_SingleInstallBlock(t *testing.T) {
	plan := parse(
		"The following NEW package is going to be installed:",
		"  foo-kmp-default 1.0-1 x86_64 repoA",
		"",
	)

	require.Len(t, plan.Install, 1)
	assert.Empty(t, plan.Remove)

	pkg := plan.Install[0]
	assert.Equal(t, "foo-kmp-default", pkg.Name)
	assert.Equal(t, "1.0-1", pkg.Version)
	assert.Equal(t, "x86_64", pkg.Arch)
	assert.Equal(t, "repoA", pkg.Repo)
}

func TestParser_RemovalBlock(t *testing.T) {
	plan := parse(
		"The following package is going to be REMOVED:",
		"  old-kmp-default 1.0-1 x86_64",
		"",
	)

	assert.Empty(t, plan.Install)
	require.Len(t, plan.Remove, 1)
	assert.Equal(t, "old-kmp-default-1.0-1.x86_64", plan.Remove[0].Identity())
}

func TestParser_HeaderVariants(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		removal bool
	}{
		{name: "new singular", header: "The following NEW package is going to be installed:"},
		{name: "new plural", header: "The following 3 NEW packages are going to be installed:"},
		{name: "upgrade", header: "The following package is going to be upgraded:"},
		{name: "downgrade", header: "The following 2 packages are going to be downgraded:"},
		{name: "removal", header: "The following package is going to be REMOVED:", removal: true},
		{name: "removal plural", header: "The following 4 packages are going to be REMOVED:", removal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := parse(tt.header, "  foo-kmp-default 1.0-1 x86_64", "")

			if tt.removal {
				assert.Empty(t, plan.Install)
				assert.Len(t, plan.Remove, 1)
			} else {
				assert.Len(t, plan.Install, 1)
				assert.Empty(t, plan.Remove)
			}
		})
	}
}

func TestParser_UpgradeTransitionVersion(t *testing.T) {
	plan := parse(
		"The following package is going to be upgraded:",
		"  foo-kmp-default 1.0-1 -> 1.2-1 x86_64 repoA",
		"",
	)

	require.Len(t, plan.Install, 1)
	assert.Equal(t, "1.2-1", plan.Install[0].Version)
	assert.Equal(t, "repoA", plan.Install[0].Repo)
}

func TestParser_ContinuationLinesFillRepo(t *testing.T) {
	plan := parse(
		"The following NEW package is going to be installed:",
		"  foo-kmp-default 1.0-1 x86_64",
		"    repoA",
		"    some extra detail",
		"",
	)

	require.Len(t, plan.Install, 1)
	pkg := plan.Install[0]
	assert.Equal(t, "repoA", pkg.Repo)
	assert.Equal(t, []string{"repoA", "some extra detail"}, pkg.Details)
}

func TestParser_ContinuationDoesNotOverrideRepo(t *testing.T) {
	plan := parse(
		"The following NEW package is going to be installed:",
		"  foo-kmp-default 1.0-1 x86_64 repoA",
		"    something else",
		"",
	)

	require.Len(t, plan.Install, 1)
	assert.Equal(t, "repoA", plan.Install[0].Repo)
	assert.Equal(t, []string{"repoA", "something else"}, plan.Install[0].Details)
}

func TestParser_UnindentedPackageLines(t *testing.T) {
	// Some output styles print package lines flush left with indented
	// continuations; the block indentation follows the first line.
	plan := parse(
		"The following NEW package is going to be installed:",
		"foo-kmp-default 1.0-1 x86_64",
		"  repoA",
		"",
	)

	require.Len(t, plan.Install, 1)
	assert.Equal(t, "repoA", plan.Install[0].Repo)
}

func TestParser_FiltersNonKMPPackages(t *testing.T) {
	plan := parse(
		"The following 3 NEW packages are going to be installed:",
		"  glibc 2.38-1 x86_64 repoBase",
		"    continuation of a discarded package",
		"  foo-kmp-default 1.0-1 x86_64 repoA",
		"  kernel-default 6.4.0-1 x86_64 repoBase",
		"",
	)

	require.Len(t, plan.Install, 1)
	assert.Equal(t, "foo-kmp-default", plan.Install[0].Name)
}

func TestParser_MultipleBlocks(t *testing.T) {
	plan := parse(
		"Loading repository data...",
		"The following 2 NEW packages are going to be installed:",
		"  foo-kmp-default 1.0-1 x86_64 repoA",
		"  bar-kmp-default 2.0-1 x86_64 repoB",
		"",
		"Reading installed packages...",
		"The following package is going to be REMOVED:",
		"  old-kmp-default 0.9-1 x86_64",
		"",
		"2 new packages to install, 1 to remove.",
	)

	require.Len(t, plan.Install, 2)
	require.Len(t, plan.Remove, 1)
	assert.Equal(t, "foo-kmp-default", plan.Install[0].Name)
	assert.Equal(t, "bar-kmp-default", plan.Install[1].Name)
	assert.Equal(t, "old-kmp-default", plan.Remove[0].Name)
}

func TestParser_FlushClosesOpenBlock(t *testing.T) {
	// Output ending inside a block, without the trailing blank line.
	plan := parse(
		"The following NEW package is going to be installed:",
		"  foo-kmp-default 1.0-1 x86_64 repoA",
	)

	require.Len(t, plan.Install, 1)
}

func TestParser_TrailingWhitespaceStripped(t *testing.T) {
	plan := parse(
		"The following NEW package is going to be installed:  \t",
		"  foo-kmp-default 1.0-1 x86_64 repoA \r",
		"   ",
	)

	require.Len(t, plan.Install, 1)
	assert.Equal(t, "repoA", plan.Install[0].Repo)
}

func TestParser_IgnoresProseOutsideBlocks(t *testing.T) {
	plan := parse(
		"Refreshing service 'container-suseconnect'.",
		"Loading repository data...",
		"Resolving package dependencies...",
		"",
	)

	assert.True(t, plan.Empty())
}

func TestParser_FullTranscript(t *testing.T) {
	data, err := os.ReadFile("testdata/dryrun_verbose.txt")
	require.NoError(t, err)

	p := zypper.NewParser(domain.DefaultKMPInfix)
	for _, line := range strings.Split(string(data), "\n") {
		p.Feed(line)
	}
	p.Flush()

	g := goldie.New(t)
	g.Assert(t, "dryrun_plan", []byte(renderPlan(p.Plan())))
}

// renderPlan flattens a plan into a stable textual form for golden
// comparison.
func renderPlan(plan *domain.Plan) string {
	var b strings.Builder
	for _, pkg := range plan.Install {
		b.WriteString("install " + pkg.Identity() + " repo=" + pkg.Repo + "\n")
	}
	for _, pkg := range plan.Remove {
		b.WriteString("remove " + pkg.Identity() + "\n")
	}
	return b.String()
}
