package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripBaseHrefFromHead(t *testing.T) {
	tests := []struct {
		name string
		head string
		want string
	}{
		{
			name: "removes production base tag",
			head: `<meta charset="utf-8"><base href="/policy-reporter/"><link rel="icon" href="/favicon.ico">`,
			want: `<meta charset="utf-8"><link rel="icon" href="/favicon.ico">`,
		},
		{
			name: "no base tag is a no-op",
			head: `<meta charset="utf-8"><title>Docs</title>`,
			want: `<meta charset="utf-8"><title>Docs</title>`,
		},
		{
			name: "other base tags are kept",
			head: `<base href="/other/">`,
			want: `<base href="/other/">`,
		},
		{
			name: "empty head",
			head: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &TemplateParams{Head: tt.head, App: "<div id=\"app\"></div>"}
			StripBaseHrefFromHead(p)
			assert.Equal(t, tt.want, p.Head)
			assert.Equal(t, "<div id=\"app\"></div>", p.App)
		})
	}
}

func TestStripBaseHref_FirstOccurrenceOnly(t *testing.T) {
	p := &TemplateParams{Head: `<base href="/x/">a<base href="/x/">`}
	StripBaseHref("/x/")(p)
	assert.Equal(t, `a<base href="/x/">`, p.Head)
}

func TestRegistry(t *testing.T) {
	r := Registry{}
	var order []string
	r.On(EventSSRTemplateParams, func(p *TemplateParams) { order = append(order, "first"); p.Head += "1" })
	r.On(EventSSRTemplateParams, func(p *TemplateParams) { order = append(order, "second"); p.Head += "2" })
	r.On("render:done", nil)

	p := &TemplateParams{}
	n := r.Call(EventSSRTemplateParams, p)

	require.Equal(t, 2, n)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, "12", p.Head)
	assert.Equal(t, 0, r.Call("unknown", p))
	assert.Equal(t, []string{EventSSRTemplateParams}, r.Events())
}

func TestRegistry_Merge(t *testing.T) {
	base := Registry{}
	base.On("a", func(p *TemplateParams) { p.Head += "base" })
	override := Registry{}
	override.On("a", func(p *TemplateParams) { p.Head += "+override" })
	override.On("b", func(p *TemplateParams) {})

	base.Merge(override)

	p := &TemplateParams{}
	base.Call("a", p)
	assert.Equal(t, "base+override", p.Head)
	assert.Equal(t, []string{"a", "b"}, base.Events())
}
