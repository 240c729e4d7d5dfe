package domain

import (
	"path"
	"strings"
)

// moduleRoot is the directory tree the kernel loads modules from. Files
// anywhere else are never kernel modules, whatever their suffix.
const moduleRoot = "/lib/modules/"

// moduleSuffixes are the file endings that mark a kernel module, longest
// compound forms before the bare compression suffix.
var moduleSuffixes = []string{".ko", ".ko.gz", ".ko.xz", ".ko.zst", ".zst"}

// MatchModule reports whether p names a kernel module file, and if so returns
// the kernel version it belongs to and the module's normalized name. The
// module loader treats '-' and '_' interchangeably in module names; the
// returned name always uses '_' so two names can be compared directly.
//
// Anything that is not a module file (license texts, headers, docs) yields
// ok=false. That is a legitimate result, not an error.
func MatchModule(p string) (kernelVersion, name string, ok bool) {
	rest, found := strings.CutPrefix(p, moduleRoot)
	if !found {
		return "", "", false
	}
	version, rest, found := strings.Cut(rest, "/")
	if !found || version == "" || rest == "" {
		return "", "", false
	}
	stem, ok := cutModuleSuffix(path.Base(rest))
	if !ok || stem == "" {
		return "", "", false
	}
	return version, strings.ReplaceAll(stem, "-", "_"), true
}

func cutModuleSuffix(base string) (string, bool) {
	for _, suffix := range moduleSuffixes {
		if stem, found := strings.CutSuffix(base, suffix); found {
			return stem, true
		}
	}
	return "", false
}

// ModuleKey builds the identifier under which a module is compared across
// packages.
func ModuleKey(kernelVersion, name string) string {
	return kernelVersion + "/" + name
}
