package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// O padrão ILIKE tem que se comportar como o LeadFilter.Matches: substring
// literal. %, _ e \ no termo de busca são dados, nunca curingas.
func TestLikePatternEscapesMetacharacters(t *testing.T) {
	assert.Equal(t, `%john\_doe%`, likePattern("john_doe"))
	assert.Equal(t, `%50\%%`, likePattern("50%"))
	assert.Equal(t, `%acme\\corp%`, likePattern(`acme\corp`))
	assert.Equal(t, "%maria%", likePattern("maria"))
}

func TestLikePatternAgreesWithReferencePredicate(t *testing.T) {
	// johnXdoe contém "john" mas não "john_doe"; com o escape, o ILIKE
	// rejeita igual ao predicado de referência.
	lead := entity.Lead{Name: "johnXdoe", Email: "x@y.com"}
	filter := entity.LeadFilter{Text: "john_doe"}
	assert.False(t, filter.Matches(lead))
	assert.False(t, likeMatch(likePattern("john_doe"), "johnXdoe"))

	match := entity.Lead{Name: "john_doe", Email: "x@y.com"}
	assert.True(t, filter.Matches(match))
	assert.True(t, likeMatch(likePattern("john_doe"), "john_doe"))

	// Termo com % não vira "casa com qualquer coisa".
	pct := entity.LeadFilter{Text: "100%"}
	assert.False(t, pct.Matches(entity.Lead{Name: "100", Email: "x@y.com"}))
	assert.False(t, likeMatch(likePattern("100%"), "100"))
	assert.True(t, likeMatch(likePattern("100%"), "juros de 100% ao ano"))
}

// likeMatch reproduz a semântica LIKE/ESCAPE '\' do Postgres para os padrões
// que likePattern gera: %...% com o miolo todo escapado, ou seja, substring
// literal do termo original.
func likeMatch(pattern, value string) bool {
	inner := strings.TrimSuffix(strings.TrimPrefix(pattern, "%"), "%")
	unescaper := strings.NewReplacer(`\\`, `\`, `\%`, `%`, `\_`, `_`)
	return strings.Contains(strings.ToLower(value), strings.ToLower(unescaper.Replace(inner)))
}
