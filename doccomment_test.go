package fragmen_test

import (
	"testing"

	"github.com/fwojciec/fragmen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chunkSource = `/**
 * Splits an array into chunks of the given size.
 *
 * @example
 * chunk([1, 2, 3, 4, 5], 2)
 * // => [[1, 2], [3, 4], [5]]
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

func TestExtractDocComment(t *testing.T) {
	t.Parallel()

	t.Run("extracts canonical chunk comment", func(t *testing.T) {
		t.Parallel()

		doc := fragmen.ExtractDocComment(chunkSource)

		assert.Equal(t, "Splits an array into chunks of the given size.", doc.Description)
		require.Len(t, doc.Examples, 1)
		assert.Equal(t, "chunk([1, 2, 3, 4, 5], 2)\n// => [[1, 2], [3, 4], [5]]", doc.Examples[0])
		require.Len(t, doc.Params, 2)
		assert.Equal(t, fragmen.Param{Name: "array", Type: "T[]", Description: "The array to split."}, doc.Params[0])
		assert.Equal(t, fragmen.Param{Name: "size", Type: "number", Description: "The size of each chunk."}, doc.Params[1])
		assert.Equal(t, "T[][]", doc.Returns.Type)
		assert.Equal(t, "The array of chunks.", doc.Returns.Description)
		assert.Equal(t, []string{"array", "split"}, doc.Tags)
	})

	t.Run("returns empty fields when there is no doc comment", func(t *testing.T) {
		t.Parallel()

		doc := fragmen.ExtractDocComment("// just a line comment\nexport const x = 1;\n")

		assert.Empty(t, doc.Description)
		assert.Empty(t, doc.Examples)
		assert.Empty(t, doc.Params)
		assert.Equal(t, fragmen.Returns{}, doc.Returns)
		assert.Empty(t, doc.Tags)
		assert.Empty(t, doc.Since)
	})

	t.Run("never panics on arbitrary input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"/**",
			"*/",
			"/**/",
			"/***/",
			"/** @param */",
			"/** @param {",
			"/** @returns {{} */",
			"/** @example */",
			"/**\n * @\n * @@\n */",
			"\x00\xff/** \xfe */",
		}

		for _, in := range inputs {
			assert.NotPanics(t, func() { fragmen.ExtractDocComment(in) }, "input %q", in)
		}
	})

	t.Run("uses only the first block comment", func(t *testing.T) {
		t.Parallel()

		source := "/** First. */\nconst a = 1;\n/** Second. */\nconst b = 2;"

		doc := fragmen.ExtractDocComment(source)

		assert.Equal(t, "First.", doc.Description)
	})

	t.Run("joins multi-line descriptions with spaces", func(t *testing.T) {
		t.Parallel()

		source := "/**\n * Creates a debounced function\n * that delays invocation.\n */"

		doc := fragmen.ExtractDocComment(source)

		assert.Equal(t, "Creates a debounced function that delays invocation.", doc.Description)
	})

	t.Run("stops the description at the first tag", func(t *testing.T) {
		t.Parallel()

		source := "/**\n * Description.\n * @param {string} s Input.\n * Trailing prose.\n */"

		doc := fragmen.ExtractDocComment(source)

		assert.Equal(t, "Description.", doc.Description)
	})

	t.Run("captures params in source order", func(t *testing.T) {
		t.Parallel()

		source := `/**
 * @param {string} a First.
 * @param {number} b Second.
 * @param {boolean} c Third.
 */`

		doc := fragmen.ExtractDocComment(source)

		require.Len(t, doc.Params, 3)
		assert.Equal(t, "a", doc.Params[0].Name)
		assert.Equal(t, "b", doc.Params[1].Name)
		assert.Equal(t, "c", doc.Params[2].Name)
	})

	t.Run("defaults missing types", func(t *testing.T) {
		t.Parallel()

		source := "/**\n * @param value The value.\n * @returns The result.\n */"

		doc := fragmen.ExtractDocComment(source)

		require.Len(t, doc.Params, 1)
		assert.Equal(t, "any", doc.Params[0].Type)
		assert.Equal(t, "value", doc.Params[0].Name)
		assert.Equal(t, "The value.", doc.Params[0].Description)
		assert.Equal(t, "unknown", doc.Returns.Type)
		assert.Equal(t, "The result.", doc.Returns.Description)
	})

	t.Run("accepts @return as an alias", func(t *testing.T) {
		t.Parallel()

		doc := fragmen.ExtractDocComment("/**\n * @return {string} Name.\n */")

		assert.Equal(t, "string", doc.Returns.Type)
		assert.Equal(t, "Name.", doc.Returns.Description)
	})

	t.Run("drops malformed tags", func(t *testing.T) {
		t.Parallel()

		source := `/**
 * @param {string name Missing brace.
 * @param {string}
 * @param {number} ok Fine.
 * @returns {} Empty type.
 */`

		doc := fragmen.ExtractDocComment(source)

		require.Len(t, doc.Params, 1)
		assert.Equal(t, "ok", doc.Params[0].Name)
		assert.Equal(t, fragmen.Returns{}, doc.Returns)
	})

	t.Run("collects multiple examples preserving indentation", func(t *testing.T) {
		t.Parallel()

		source := `/**
 * Memoizes a function.
 * @example
 * const f = memoize((n) => {
 *   return n * 2;
 * });
 * @example memoize(Math.sqrt)(4)
 * @returns {Function} The memoized function.
 */`

		doc := fragmen.ExtractDocComment(source)

		require.Len(t, doc.Examples, 2)
		assert.Equal(t, "const f = memoize((n) => {\n  return n * 2;\n});", doc.Examples[0])
		assert.Equal(t, "memoize(Math.sqrt)(4)", doc.Examples[1])
		assert.Equal(t, "Memoizes a function.", doc.Description)
	})

	t.Run("flushes an example left open at the end", func(t *testing.T) {
		t.Parallel()

		doc := fragmen.ExtractDocComment("/**\n * @example\n * sleep(100)\n */")

		assert.Equal(t, []string{"sleep(100)"}, doc.Examples)
	})

	t.Run("reads tags and since", func(t *testing.T) {
		t.Parallel()

		source := "/**\n * @tags async timing, async\n * @since 2024-05-01\n */"

		doc := fragmen.ExtractDocComment(source)

		assert.Equal(t, []string{"async", "timing"}, doc.Tags)
		assert.Equal(t, "2024-05-01", doc.Since)
	})

	t.Run("handles single-line comments", func(t *testing.T) {
		t.Parallel()

		doc := fragmen.ExtractDocComment("/** Returns nothing. */\nexport const noop = () => {};")

		assert.Equal(t, "Returns nothing.", doc.Description)
	})
}

func TestParseParamTag(t *testing.T) {
	t.Parallel()

	t.Run("parses nested braces in type", func(t *testing.T) {
		t.Parallel()

		p, err := fragmen.ParseParamTag("@param {{ leading: boolean }} options Settings.")

		require.NoError(t, err)
		assert.Equal(t, "{ leading: boolean }", p.Type)
		assert.Equal(t, "options", p.Name)
		assert.Equal(t, "Settings.", p.Description)
	})

	t.Run("parses optional bracketed names", func(t *testing.T) {
		t.Parallel()

		p, err := fragmen.ParseParamTag("@param {number} [wait=0] Delay.")

		require.NoError(t, err)
		assert.Equal(t, "[wait=0]", p.Name)
	})

	t.Run("reports malformed lines as invalid", func(t *testing.T) {
		t.Parallel()

		_, err := fragmen.ParseParamTag("@param {string")

		require.Error(t, err)
		assert.Equal(t, fragmen.EINVALID, fragmen.ErrorCode(err))
	})

	t.Run("rejects other tags", func(t *testing.T) {
		t.Parallel()

		_, err := fragmen.ParseParamTag("@returns {string} x")

		assert.Equal(t, fragmen.EINVALID, fragmen.ErrorCode(err))
	})
}

func TestParseReturnsTag(t *testing.T) {
	t.Parallel()

	t.Run("parses type and description", func(t *testing.T) {
		t.Parallel()

		r, err := fragmen.ParseReturnsTag("@returns {Promise<void>} - Resolves later.")

		require.NoError(t, err)
		assert.Equal(t, fragmen.Returns{Type: "Promise<void>", Description: "Resolves later."}, r)
	})

	t.Run("reports unterminated type as invalid", func(t *testing.T) {
		t.Parallel()

		_, err := fragmen.ParseReturnsTag("@returns {string")

		assert.Equal(t, fragmen.EINVALID, fragmen.ErrorCode(err))
	})
}
