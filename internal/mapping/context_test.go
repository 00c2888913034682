package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"cms-mapper/internal/diagnostic"
)

func TestContext_RequireCulture(t *testing.T) {
	reg := testRegistry(t)

	_, err := reg.NewContext().RequireCulture("UpdateDate")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCulture)
	assert.Equal(t, "missing culture in mapping options: UpdateDate", err.Error())

	culture, err := reg.NewContext(WithCulture("da-DK")).RequireCulture("UpdateDate")
	require.NoError(t, err)
	assert.Equal(t, "da-DK", culture)
}

func TestContext_Includes(t *testing.T) {
	reg := testRegistry(t)

	all := reg.NewContext()
	assert.True(t, all.Includes("anything"))
	assert.Nil(t, all.IncludedProperties())

	some := reg.NewContext(WithIncludedProperties("title", "bodyText"))
	assert.True(t, some.Includes("Title"))
	assert.True(t, some.Includes("bodytext"))
	assert.False(t, some.Includes("author"))
}

func TestContext_ForVariantSharesState(t *testing.T) {
	reg := testRegistry(t)
	root := reg.NewContext(WithCulture("en-US"), WithSegment("mobile"), WithItem("user", 42))

	child := root.ForCulture("da-DK")
	assert.Equal(t, "da-DK", child.Culture())
	assert.Equal(t, "mobile", child.Segment())
	assert.Equal(t, "en-US", root.Culture())

	child.SetItem("parent", "home")

	v, ok := root.Item("parent")
	require.True(t, ok)
	assert.Equal(t, "home", v)

	user, ok := ItemAs[int](child, "user")
	require.True(t, ok)
	assert.Equal(t, 42, user)

	_, ok = ItemAs[string](child, "user")
	assert.False(t, ok)

	child.Warn(diagnostic.CodeEditorMissing, "editor gone", "a -> b", "title")
	assert.Len(t, root.Diagnostics().Warnings, 1)

	invariant := child.ForVariant("", "")
	assert.False(t, invariant.HasCulture())
	assert.Same(t, reg, invariant.Registry())
}

func TestContext_WarnLogs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	reg := testRegistry(t)
	ctx := reg.NewContext(WithLogger(zap.New(core)), WithCulture("en-US"))

	ctx.Warn(diagnostic.CodeConfigValueMissing, "no value for configuration field", "DataType -> DataTypeDisplay", "maxChars")
	ctx.Info(diagnostic.CodeStalePropertyID, "debug only", "", "")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "no value for configuration field", entry.Message)
	assert.Equal(t, "config_value_missing", entry.ContextMap()["code"])
	assert.Equal(t, "maxChars", entry.ContextMap()["property"])
	assert.Equal(t, "en-US", entry.ContextMap()["culture"])

	assert.True(t, ctx.Diagnostics().HasCode(diagnostic.CodeConfigValueMissing))
	assert.True(t, ctx.Diagnostics().HasCode(diagnostic.CodeStalePropertyID))
	assert.True(t, ctx.Diagnostics().IsValid())
}

func TestWithLogger_Nil(t *testing.T) {
	ctx := testRegistry(t).NewContext(WithLogger(nil))
	assert.NotNil(t, ctx.Logger())
}
