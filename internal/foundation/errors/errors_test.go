package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryUnterminated, "tag is never closed").
			WithSeverity(SeverityFatal).
			WithContext(ContextConstruct, "<div>").
			AtOffset(12).
			Build()

		assert.Equal(t, CategoryUnterminated, err.Category())
		assert.Equal(t, SeverityFatal, err.Severity())
		assert.Equal(t, "tag is never closed", err.Message())

		construct, ok := err.Context().GetString(ContextConstruct)
		require.True(t, ok)
		assert.Equal(t, "<div>", construct)

		offset, ok := err.Offset()
		require.True(t, ok)
		assert.Equal(t, 12, offset)
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		assert.True(t, IsClassified(err))
		assert.True(t, HasCategory(err, CategoryConfig))
		assert.True(t, HasSeverity(err, SeverityFatal))
		assert.True(t, err.IsFatal())
		assert.False(t, err.IsParseFailure())
	})

	t.Run("Detection through wrapping", func(t *testing.T) {
		inner := GrammarError("unexpected input").AtOffset(3).Build()
		wrapped := fmt.Errorf("parsing page.md: %w", inner)

		classified, ok := AsClassified(wrapped)
		require.True(t, ok)
		assert.Same(t, inner, classified)
		assert.Equal(t, CategoryGrammar, GetCategory(wrapped))
		assert.True(t, classified.IsParseFailure())
	})

	t.Run("Unclassified defaults", func(t *testing.T) {
		plain := errors.New("boom")
		assert.False(t, IsClassified(plain))
		assert.Equal(t, CategoryInternal, GetCategory(plain))
		assert.Equal(t, SeverityError, GetSeverity(plain))
	})

	t.Run("Error string", func(t *testing.T) {
		err := WrapError(errors.New("eof"), CategoryFileSystem, "read failed").Build()
		assert.Equal(t, "[filesystem:error] read failed: eof", err.Error())

		bare := NotFoundError("attribute not found").Build()
		assert.Equal(t, "[not_found:error] attribute not found", bare.Error())
	})

	t.Run("WithContext copies", func(t *testing.T) {
		base := RecursionError("too deep").Build()
		derived := base.WithContext(ContextDepth, 201)

		_, ok := base.Context().Get(ContextDepth)
		assert.False(t, ok, "original context must stay untouched")
		depth, ok := derived.Context().GetInt(ContextDepth)
		require.True(t, ok)
		assert.Equal(t, 201, depth)
	})

	t.Run("Is compares category and message", func(t *testing.T) {
		a := NotFoundError("attribute not found").Build()
		b := NotFoundError("attribute not found").WithContext(ContextAttribute, "href").Build()
		c := GrammarError("attribute not found").Build()

		assert.ErrorIs(t, b, a)
		assert.NotErrorIs(t, c, a)
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := WrapError(originalErr, CategoryFileSystem, "cannot open input").
			Warning().
			WithContext(ContextPath, "doc.txt").
			WithContext(ContextLine, 4).
			Build()

		assert.Equal(t, CategoryFileSystem, err.Category())
		assert.Equal(t, SeverityWarning, err.Severity())
		require.ErrorIs(t, err, originalErr)
		assert.Same(t, originalErr, err.Cause())

		path, _ := err.Context().GetString(ContextPath)
		assert.Equal(t, "doc.txt", path)
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
		}{
			{"GrammarError", GrammarError("test"), CategoryGrammar, SeverityError},
			{"UnterminatedError", UnterminatedError("test"), CategoryUnterminated, SeverityError},
			{"NotFoundError", NotFoundError("test"), CategoryNotFound, SeverityError},
			{"RecursionError", RecursionError("test"), CategoryRecursion, SeverityError},
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityFatal},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityError},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				assert.Equal(t, tt.category, err.Category())
				assert.Equal(t, tt.severity, err.Severity())
			})
		}
	})
}

func TestErrorContext(t *testing.T) {
	t.Run("Context operations", func(t *testing.T) {
		ctx := make(ErrorContext)
		ctx = ctx.Set("key1", "value1")
		ctx = ctx.Set("key2", 42)

		value1, ok := ctx.GetString("key1")
		assert.True(t, ok)
		assert.Equal(t, "value1", value1)

		value2, ok := ctx.GetInt("key2")
		assert.True(t, ok)
		assert.Equal(t, 42, value2)

		_, ok = ctx.GetInt("key1")
		assert.False(t, ok, "string value must not read as int")

		_, ok = ctx.Get("nonexistent")
		assert.False(t, ok)
	})

	t.Run("Nil context", func(t *testing.T) {
		var ctx ErrorContext
		_, ok := ctx.Get("anything")
		assert.False(t, ok)
		ctx = ctx.Set("k", "v")
		assert.Len(t, ctx, 1)
	})

	t.Run("Context merge", func(t *testing.T) {
		ctx1 := ErrorContext{"key1": "value1", "shared": "original"}
		ctx2 := ErrorContext{"key2": "value2", "shared": "overridden"}

		merged := ctx1.Merge(ctx2)

		assert.Equal(t, "value1", merged["key1"])
		assert.Equal(t, "value2", merged["key2"])
		assert.Equal(t, "overridden", merged["shared"])
		assert.Equal(t, "original", ctx1["shared"])
	})
}
