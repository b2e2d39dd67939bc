package cpp

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/source"
)

// Separator joins C++ scope names.
const Separator = "::"

// Extensions lists the file extensions parsed when walking directories.
var Extensions = []string{".h", ".hh", ".hpp", ".hxx", ".c", ".cc", ".cpp", ".cxx"}

// Language registers the C++ provider.
var Language = &source.Language{
	Name:        "cpp",
	Aliases:     []string{"c++", "cxx"},
	Extensions:  Extensions,
	NewProvider: func(logger *log.Logger) source.Provider { return New(logger) },
}

// Provider parses C++ sources with tree-sitter.
type Provider struct {
	logger *log.Logger
}

// New returns a provider. A nil logger discards.
func New(logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Provider{logger: logger}
}

// Name returns "cpp".
func (p *Provider) Name() string { return Language.Name }

// Load parses every source and include file and returns the program.
func (p *Provider) Load(ctx context.Context, opts source.LoadOptions) (*source.Program, error) {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collect(opts.Dir, append(slices.Clone(paths), opts.Includes...))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no C/C++ files under %s", strings.Join(paths, ", "))
	}

	parser := sitter.NewParser()
	parser.SetLanguage(cpp.GetLanguage())

	idx := newIndex()
	units := make([]*source.Decl, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParseFailed, err, "read %s", file)
		}
		tree, err := parser.ParseCtx(ctx, nil, src)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParseFailed, err, "parse %s", file)
		}
		root := tree.RootNode()
		if root.HasError() {
			p.logger.Warn("syntax errors, keeping recoverable declarations", "file", file)
		}
		fp := &fileParser{src: src, file: file, index: idx}
		units = append(units, fp.unit(root))
		p.logger.Debug("parsed", "file", file, "classes", fp.classes)
	}

	return &source.Program{
		Language:  Language.Name,
		Separator: Separator,
		Units:     units,
		Resolver:  idx,
	}, nil
}

// collect expands paths relative to dir into a sorted, deduplicated list of
// absolute file names, keeping the order in which paths were given.
func collect(dir string, paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}
	for _, p := range paths {
		if err := errors.ValidatePath(p); err != nil {
			return nil, err
		}
		if !filepath.IsAbs(p) && dir != "" {
			p = filepath.Join(dir, p)
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "source path %q", p)
		}
		info, err := os.Stat(abs)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "source path %q", p)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "source path %q", p)
		}
		if !info.IsDir() {
			add(abs)
			continue
		}
		var found []string
		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != abs && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if hasExtension(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "walk %s", abs)
		}
		slices.Sort(found)
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}

func hasExtension(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}
