package keyfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroups(t *testing.T) {
	t.Parallel()

	doc := New()
	assert.Equal(t, []string{}, doc.Groups())
	_, ok := doc.StartGroup()
	assert.False(t, ok)
	assert.False(t, doc.HasGroup("G1"))

	require.NoError(t, doc.SetValue("G1", "Test", "foo1", NoLocale))
	require.NoError(t, doc.SetValue("G2", "Test", "foo2", NoLocale))
	require.NoError(t, doc.SetValue("G3", "Test", "foo3", NoLocale))
	assert.Equal(t, []string{"G1", "G2", "G3"}, doc.Groups())
	start, ok := doc.StartGroup()
	require.True(t, ok)
	assert.Equal(t, "G1", start)
	assert.True(t, doc.HasGroup("G2"))

	doc.RemoveGroup("G2")
	doc.RemoveGroup("missing")
	assert.Equal(t, []string{"G1", "G3"}, doc.Groups())
	assert.False(t, doc.HasKey("G2", "Test"))

	v, ok := doc.Value("G3", "Test", NoLocale)
	require.True(t, ok, "index is rebuilt after removal")
	assert.Equal(t, "foo3", v)

	require.NoError(t, doc.SetValue("G2", "Test", "again", NoLocale))
	assert.Equal(t, []string{"G1", "G3", "G2"}, doc.Groups())
}

func TestKeys(t *testing.T) {
	t.Parallel()

	doc := New()
	assert.Equal(t, []string{}, doc.Keys("G1"))

	require.NoError(t, doc.SetValue("G1", "K1", "v1", NoLocale))
	require.NoError(t, doc.SetValue("G1", "K2", "v2", NoLocale))
	require.NoError(t, doc.SetValue("G1", "K1", "v1 fr", ForLocale(MustParseLocale("fr"))))
	require.NoError(t, doc.SetValue("G1", "K3", "v3 de", ForLocale(MustParseLocale("de"))))
	assert.Equal(t, []string{"K1", "K2", "K3"}, doc.Keys("G1"))
	assert.True(t, doc.HasKey("G1", "K3"), "a translation alone makes the key exist")
	assert.Equal(t, []string{"fr"}, doc.Locales("G1", "K1"))
	assert.Nil(t, doc.Locales("G1", "K2"))
	assert.Nil(t, doc.Locales("missing", "K2"))

	doc.RemoveKey("G1", "K1", NoLocale)
	assert.Equal(t, []string{"K2", "K3"}, doc.Keys("G1"))
	assert.False(t, doc.HasKey("G1", "K1"))
}

func TestRemoveLocalizedKey(t *testing.T) {
	t.Parallel()

	doc := New()
	fr := MustParseLocale("fr")
	require.NoError(t, doc.SetValue("G", "K", "base", NoLocale))
	require.NoError(t, doc.SetValue("G", "K", "french", ForLocale(fr)))
	require.NoError(t, doc.SetValue("G", "K", "german", ForLocale(MustParseLocale("de"))))

	doc.RemoveKey("G", "K", ForLocale(MustParseLocale("fr_FR")))
	assert.Equal(t, []string{"fr", "de"}, doc.Locales("G", "K"), "removal needs the exact tag")

	doc.RemoveKey("G", "K", ForLocale(fr))
	assert.Equal(t, []string{"de"}, doc.Locales("G", "K"))
	v, ok := doc.Value("G", "K", NoLocale)
	require.True(t, ok)
	assert.Equal(t, "base", v)

	doc.RemoveKey("G", "K", NoLocale)
	assert.False(t, doc.HasKey("G", "K"))
	doc.RemoveKey("missing", "K", NoLocale)
}

func TestInvalidNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		group string
		key   string
		err   error
	}{
		{"group cannot contain []", "Gr[ou]p", "Key", ErrInvalidGroupName},
		{"group cannot contain newline", "Group\n1", "Key", ErrInvalidGroupName},
		{"group cannot be empty", "", "Key", ErrInvalidGroupName},
		{"key cannot contain =", "Group", "K=ey", ErrInvalidKey},
		{"key cannot contain []", "Group", "K[ey]", ErrInvalidKey},
		{"key cannot contain newline", "Group", "Ke\ny", ErrInvalidKey},
		{"key cannot contain spaces", "Group", "K ey", ErrInvalidKey},
		{"key cannot be empty", "Group", "", ErrInvalidKey},
		{"group cannot be blank", "  ", "Key", ErrInvalidGroupName},
		{"group cannot have leading blanks", " Group", "Key", ErrInvalidGroupName},
		{"group cannot have trailing blanks", "Group\t", "Key", ErrInvalidGroupName},
		{"key cannot start with #", "Group", "#Key", ErrInvalidKey},
		{"key cannot contain NUL", "Group", "K\x00ey", ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := New()
			err := doc.SetValue(tt.group, tt.key, "value", NoLocale)
			require.ErrorIs(t, err, tt.err)
			assert.Empty(t, doc.Groups(), "rejected set leaves the document unchanged")
		})
	}

	doc := New()
	require.ErrorIs(t, doc.SetValue("G[1]", "K", "v", NoLocale), ErrInvalidGroupName)
	require.ErrorIs(t, doc.SetValue("G", "K", "line\nbreak", NoLocale), ErrInvalidValue)
	assert.Empty(t, doc.Groups())
}

func TestInvalidValues(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{" v", "v ", "\tv", "v\t", "\fv", "v\v", "v\x00", "a\rb"} {
		doc := New()
		require.ErrorIs(t, doc.SetValue("G", "K", raw, NoLocale), ErrInvalidValue, "value %q", raw)
		assert.Empty(t, doc.Groups())
	}

	doc := New()
	require.NoError(t, doc.SetValue("G", "K", "a \f\vb", NoLocale), "inner blanks are kept")
	require.ErrorIs(t, doc.SetString("G", "K", "tail\v", NoLocale), ErrInvalidValue)
}

func TestInvalidLocaleTags(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"de@foo bar", "fr.a]b", "en_US.UTF 8"} {
		l, err := ParseLocale(text)
		require.NoError(t, err, text)

		doc := New()
		err = doc.SetValue("G", "K", "v", ForLocale(l))
		require.ErrorIs(t, err, ErrInvalidLocale, text)
		assert.Empty(t, doc.Groups())
	}

	doc := New()
	require.NoError(t, doc.SetValue("G", "K", "v", ForLocale(MustParseLocale("sr_RS.UTF-8@latin"))))
	assert.Equal(t, []string{"sr_RS.UTF-8@latin"}, doc.Locales("G", "K"))
}

func TestListSeparator(t *testing.T) {
	t.Parallel()

	doc := New()
	assert.Equal(t, ";", doc.ListSeparator())
	require.NoError(t, doc.SetListSeparator("|"))
	assert.Equal(t, "|", doc.ListSeparator())
	require.NoError(t, doc.SetListSeparator("§"))
	assert.Equal(t, "§", doc.ListSeparator())

	for _, sep := range []string{"", `\`, ";;", "\n", "\r", "s", "n", "r", "t"} {
		require.ErrorIs(t, doc.SetListSeparator(sep), ErrInvalidListSeparator, "separator %q", sep)
	}
	assert.Equal(t, "§", doc.ListSeparator())
}

func TestLocalizedValues(t *testing.T) {
	t.Parallel()

	t.Run("fallback to untranslated value", func(t *testing.T) {
		t.Parallel()
		doc := New()
		require.NoError(t, doc.SetValue("Test", "Foo", "foo", NoLocale))
		require.NoError(t, doc.SetValue("Test", "Foo", "bar", ForLocale(MustParseLocale("ru"))))
		v, ok := doc.Value("Test", "Foo", ForLocale(MustParseLocale("fr")))
		require.True(t, ok)
		assert.Equal(t, "foo", v)
	})

	t.Run("exact key", func(t *testing.T) {
		t.Parallel()
		doc := New()
		fr := ForLocale(MustParseLocale("fr_FR"))
		require.NoError(t, doc.SetValue("Test", "Foo", "french", fr))
		v, ok := doc.Value("Test", "Foo", fr)
		require.True(t, ok)
		assert.Equal(t, "french", v)
		_, ok = doc.Value("Test", "Foo", NoLocale)
		assert.False(t, ok, "no base value was set")
	})

	t.Run("best matching key", func(t *testing.T) {
		t.Parallel()
		doc := New()
		require.NoError(t, doc.SetValue("Test", "Foo", "fallback", NoLocale))
		require.NoError(t, doc.SetValue("Test", "Foo", "generic", ForLocale(MustParseLocale("fr"))))
		require.NoError(t, doc.SetValue("Test", "Foo", "france", ForLocale(MustParseLocale("fr_FR"))))

		v, ok := doc.Value("Test", "Foo", ForLocale(MustParseLocale("fr_FR.UTF-8@anywhere")))
		require.True(t, ok)
		assert.Equal(t, "france", v)

		v, ok = doc.Value("Test", "Foo", ForLocale(MustParseLocale("fr_BE")))
		require.True(t, ok)
		assert.Equal(t, "generic", v)

		v, ok = doc.Value("Test", "Foo", SuppressLocales)
		require.True(t, ok)
		assert.Equal(t, "fallback", v)
	})

	t.Run("resolve locale", func(t *testing.T) {
		t.Parallel()
		doc := New()
		require.NoError(t, doc.SetValue("Test", "Foo", "fallback", NoLocale))
		require.NoError(t, doc.SetValue("Test", "Foo", "generic", ForLocale(MustParseLocale("fr"))))
		require.NoError(t, doc.SetValue("Test", "Foo", "france", ForLocale(MustParseLocale("fr_FR"))))

		tag, ok := doc.ResolveLocaleForKey("Test", "Foo", MustParseLocale("fr_FR.UTF-8@anywhere"))
		require.True(t, ok)
		assert.Equal(t, "fr_FR", tag)

		tag, ok = doc.ResolveLocaleForKey("Test", "Foo", MustParseLocale("fr_BE"))
		require.True(t, ok)
		assert.Equal(t, "fr", tag)

		_, ok = doc.ResolveLocaleForKey("Test", "Foo", MustParseLocale("de"))
		assert.False(t, ok)
		_, ok = doc.ResolveLocaleForKey("Test", "Foo", nil)
		assert.False(t, ok)
		_, ok = doc.ResolveLocaleForKey("Missing", "Foo", MustParseLocale("fr"))
		assert.False(t, ok)
	})
}

func TestComments(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		doc, err := ParseString("# group comment\n[Group]\nKey=Value\n# end comment")
		require.NoError(t, err)
		doc.SetStartComment("Start Comment")
		doc.SetEndComment("New End Comment")
		want := "#Start Comment\n\n# group comment\n[Group]\nKey=Value\n\n#New End Comment\n"
		assert.Equal(t, want, Render(doc))
		assert.Equal(t, "Start Comment", doc.StartComment())
	})

	t.Run("group", func(t *testing.T) {
		t.Parallel()
		doc, err := ParseString("#comment\n[Group]")
		require.NoError(t, err)
		c, ok := doc.GroupComment("Group")
		require.True(t, ok)
		assert.Equal(t, "comment\n", c)

		require.NoError(t, doc.SetGroupComment("Group", "foo"))
		assert.Equal(t, "#foo\n[Group]\n", Render(doc))

		require.ErrorIs(t, doc.SetGroupComment("Missing", "foo"), ErrGroupNotFound)
		_, ok = doc.GroupComment("Missing")
		assert.False(t, ok)
	})

	t.Run("key", func(t *testing.T) {
		t.Parallel()
		doc, err := ParseString("[G]\n#c\nk=v\n#t\nk[fr]=w")
		require.NoError(t, err)
		c, ok := doc.KeyComment("G", "k", NoLocale)
		require.True(t, ok)
		assert.Equal(t, "c\n", c)

		fr := ForLocale(MustParseLocale("fr"))
		c, ok = doc.KeyComment("G", "k", fr)
		require.True(t, ok)
		assert.Equal(t, "t\n", c)

		require.NoError(t, doc.SetKeyComment("G", "k", "success", NoLocale))
		require.NoError(t, doc.SetKeyComment("G", "k", "", fr))
		assert.Equal(t, "[G]\n#success\nk=v\nk[fr]=w\n", Render(doc))

		require.ErrorIs(t, doc.SetKeyComment("G", "x", "c", NoLocale), ErrKeyNotFound)
		require.ErrorIs(t, doc.SetKeyComment("G", "k", "c", ForLocale(MustParseLocale("de"))), ErrKeyNotFound)
		require.ErrorIs(t, doc.SetKeyComment("X", "k", "c", NoLocale), ErrGroupNotFound)
		_, ok = doc.KeyComment("G", "x", NoLocale)
		assert.False(t, ok)
	})

	t.Run("set value keeps comment", func(t *testing.T) {
		t.Parallel()
		doc, err := ParseString("[G]\n#c\nk=v")
		require.NoError(t, err)
		require.NoError(t, doc.SetValue("G", "k", "w", NoLocale))
		assert.Equal(t, "[G]\n#c\nk=w\n", Render(doc))
	})
}

func TestIteration(t *testing.T) {
	t.Parallel()

	doc := New()
	ll := ForLocale(MustParseLocale("ll"))
	require.NoError(t, doc.SetValue("1", "a", "1.a", NoLocale))
	require.NoError(t, doc.SetValue("1", "a", "1.a.b", ll))
	require.NoError(t, doc.SetValue("2", "a", "2.a", NoLocale))
	require.NoError(t, doc.SetValue("2", "a", "2.a.b", ll))

	var got [][3]string
	for group, e := range doc.All() {
		got = append(got, [3]string{group, e.Name(), e.Value})
	}
	want := [][3]string{
		{"1", "a", "1.a"},
		{"1", "a[ll]", "1.a.b"},
		{"2", "a", "2.a"},
		{"2", "a[ll]", "2.a.b"},
	}
	assert.Equal(t, want, got)

	var first []string
	for group := range doc.All() {
		first = append(first, group)
		break
	}
	assert.Equal(t, []string{"1"}, first)

	entries := doc.Entries("2")
	require.Len(t, entries, 2)
	entries[0].Value = "changed"
	v, _ := doc.Value("2", "a", NoLocale)
	assert.Equal(t, "2.a", v, "entries are copies")
	assert.Nil(t, doc.Entries("missing"))
}
