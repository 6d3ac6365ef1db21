package recommend

import (
	"reflect"
	"testing"

	"github.com/bidcraft/bidcraft/internal/config"
)

func defaultTradeMap() TradeMap {
	return NewTradeMap(config.Default().TradeMap)
}

func TestTradeMap_Resolve(t *testing.T) {
	m := defaultTradeMap()

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{name: "canonical trade resolves to itself", keyword: "concrete", want: []string{"concrete"}},
		{name: "uppercase keyword", keyword: "CONCRETE", want: []string{"concrete"}},
		{name: "whitespace trimmed", keyword: "  hvac ", want: []string{"hvac"}},
		{name: "framing crosses to drywall", keyword: "framing", want: []string{"framing", "drywall"}},
		{name: "drywall crosses to framing", keyword: "drywall", want: []string{"drywall", "framing"}},
		{name: "unknown keyword resolves to nothing", keyword: "landscaping", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Resolve(tt.keyword)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestTradeMap_ResolveAll(t *testing.T) {
	m := defaultTradeMap()

	tests := []struct {
		name  string
		scope []string
		want  []string
	}{
		{
			name:  "first-seen order preserved",
			scope: []string{"electrical", "concrete"},
			want:  []string{"electrical", "concrete"},
		},
		{
			name:  "crossover union deduplicated",
			scope: []string{"framing", "drywall"},
			want:  []string{"framing", "drywall"},
		},
		{
			name:  "unknown keywords silently ignored",
			scope: []string{"concrete", "landscaping", "hvac"},
			want:  []string{"concrete", "hvac"},
		},
		{
			name:  "empty scope",
			scope: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ResolveAll(tt.scope)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveAll(%v) = %v, want %v", tt.scope, got, tt.want)
			}
		})
	}
}
