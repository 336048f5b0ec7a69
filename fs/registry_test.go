package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/fragmen"
	"github.com/fwojciec/fragmen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chunkSource = `/**
 * Splits an array into chunks of the given size.
 *
 * @param {T[]} array - The array to split.
 * @param {number} size - The size of each chunk.
 * @returns {T[][]} The array of chunks.
 * @tags array, split
 */
export function chunk<T>(array: T[], size: number): T[][] {
  const result: T[][] = [];
  for (let i = 0; i < array.length; i += size) {
    result.push(array.slice(i, i + size));
  }
  return result;
}
`

// writeFragment creates <root>/<category>/<name>/index.ts with source.
func writeFragment(t *testing.T, root, category, name, source string) {
	t.Helper()
	dir := filepath.Join(root, category, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, fragmen.SourceFile), []byte(source), 0644))
}

// setupRegistry builds a small registry in a temp directory.
func setupRegistry(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFragment(t, root, "array", "chunk", chunkSource)
	writeFragment(t, root, "array", "unique", "/**\n * Removes duplicates.\n * @tags array\n * @since 2024-03-01\n */\nexport const unique = <T>(a: T[]) => [...new Set(a)];\n")
	writeFragment(t, root, "string", "slugify", "/**\n * Converts text to a slug.\n * @since 2024-06-01\n */\nexport const slugify = (s: string) => s;\n")
	writeFragment(t, root, "promise", "sleep", "export const sleep = (ms: number) => new Promise((r) => setTimeout(r, ms));\n")
	return root
}

func TestFragmentService_ListCategories(t *testing.T) {
	t.Parallel()

	t.Run("returns sorted category directories", func(t *testing.T) {
		t.Parallel()

		root := setupRegistry(t)
		// Stray files at the root are not categories.
		require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("#"), 0644))
		svc := fs.NewFragmentService(root)

		categories, err := svc.ListCategories(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"array", "promise", "string"}, categories)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))
		ctx := context.Background()

		first, err := svc.ListCategories(ctx)
		require.NoError(t, err)
		second, err := svc.ListCategories(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("returns empty list for missing root", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(filepath.Join(t.TempDir(), "nope"))

		categories, err := svc.ListCategories(context.Background())

		require.NoError(t, err)
		assert.Empty(t, categories)
	})
}

func TestFragmentService_ListFragmentNames(t *testing.T) {
	t.Parallel()

	t.Run("returns sorted fragment directories", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		names, err := svc.ListFragmentNames(context.Background(), "array")

		require.NoError(t, err)
		assert.Equal(t, []string{"chunk", "unique"}, names)
	})

	t.Run("returns empty list for missing category", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		names, err := svc.ListFragmentNames(context.Background(), "missing")

		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("does not escape the registry", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		names, err := svc.ListFragmentNames(context.Background(), "..")

		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestFragmentService_FindFragment(t *testing.T) {
	t.Parallel()

	t.Run("returns fragment with slug and metadata", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		f, err := svc.FindFragment(context.Background(), "array", "chunk")

		require.NoError(t, err)
		assert.Equal(t, "array/chunk", f.Slug)
		assert.Equal(t, "array", f.Category)
		assert.Equal(t, "chunk", f.Name)
		assert.Equal(t, chunkSource, f.Source)
		assert.Len(t, f.Params, 2)
		assert.Equal(t, "T[][]", f.Returns.Type)
	})

	t.Run("keeps fragments without doc comments", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		f, err := svc.FindFragment(context.Background(), "promise", "sleep")

		require.NoError(t, err)
		assert.Equal(t, "promise/sleep", f.Slug)
		assert.Empty(t, f.Description)
	})

	t.Run("returns ENOTFOUND for missing fragment", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		_, err := svc.FindFragment(context.Background(), "array", "missing")

		assert.Equal(t, fragmen.ENOTFOUND, fragmen.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for directory without source file", func(t *testing.T) {
		t.Parallel()

		root := setupRegistry(t)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "array", "empty"), 0755))
		svc := fs.NewFragmentService(root)

		_, err := svc.FindFragment(context.Background(), "array", "empty")

		assert.Equal(t, fragmen.ENOTFOUND, fragmen.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for path traversal", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		_, err := svc.FindFragment(context.Background(), "..", "array")

		assert.Equal(t, fragmen.ENOTFOUND, fragmen.ErrorCode(err))
	})
}

func TestFragmentService_FindFragments(t *testing.T) {
	t.Parallel()

	t.Run("returns every fragment ordered by slug", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		fragments, err := svc.FindFragments(context.Background(), fragmen.FragmentFilter{})

		require.NoError(t, err)
		assert.Equal(t, []string{"array/chunk", "array/unique", "promise/sleep", "string/slugify"}, slugs(fragments))
	})

	t.Run("skips directories without a source file", func(t *testing.T) {
		t.Parallel()

		root := setupRegistry(t)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "array", "draft"), 0755))
		svc := fs.NewFragmentService(root)

		fragments, err := svc.FindFragments(context.Background(), fragmen.FragmentFilter{})

		require.NoError(t, err)
		assert.NotContains(t, slugs(fragments), "array/draft")
		assert.Len(t, fragments, 4)
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))
		category := "array"

		fragments, err := svc.FindFragments(context.Background(), fragmen.FragmentFilter{Category: &category})

		require.NoError(t, err)
		assert.Equal(t, []string{"array/chunk", "array/unique"}, slugs(fragments))
	})

	t.Run("filters by tag", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))
		tag := "split"

		fragments, err := svc.FindFragments(context.Background(), fragmen.FragmentFilter{Tag: &tag})

		require.NoError(t, err)
		assert.Equal(t, []string{"array/chunk"}, slugs(fragments))
	})

	t.Run("filters by glob pattern", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		fragments, err := svc.FindFragments(context.Background(), fragmen.FragmentFilter{Pattern: "**/s*"})

		require.NoError(t, err)
		assert.Equal(t, []string{"promise/sleep", "string/slugify"}, slugs(fragments))
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		_, err := svc.FindFragments(context.Background(), fragmen.FragmentFilter{Pattern: "array/[chunk"})

		assert.Equal(t, fragmen.EINVALID, fragmen.ErrorCode(err))
	})

	t.Run("sorts newest first and applies limit", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))

		fragments, err := svc.FindFragments(context.Background(), fragmen.FragmentFilter{
			SortBy: fragmen.SortBySince,
			Limit:  2,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"string/slugify", "array/unique"}, slugs(fragments))
	})

	t.Run("returns empty list for missing root", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(filepath.Join(t.TempDir(), "nope"))

		fragments, err := svc.FindFragments(context.Background(), fragmen.FragmentFilter{})

		require.NoError(t, err)
		assert.Empty(t, fragments)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fragments, err := svc.FindFragments(ctx, fragmen.FragmentFilter{})

		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, fragments)
	})

	t.Run("every listed fragment resolves to its own slug", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewFragmentService(setupRegistry(t))
		ctx := context.Background()

		categories, err := svc.ListCategories(ctx)
		require.NoError(t, err)
		for _, category := range categories {
			names, err := svc.ListFragmentNames(ctx, category)
			require.NoError(t, err)
			for _, name := range names {
				f, err := svc.FindFragment(ctx, category, name)
				require.NoError(t, err)
				assert.Equal(t, category+"/"+name, f.Slug)
			}
		}
	})
}

func slugs(fragments []*fragmen.Fragment) []string {
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		out = append(out, f.Slug)
	}
	return out
}
