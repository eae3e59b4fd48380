package finto

import (
	"strings"

	"github.com/knakk/rdf"
)

// Concept is an extracted but not yet persisted ontology entry. Label maps
// always contain exactly the supported language keys; values are nil when the
// graph carries no label in that language.
type Concept struct {
	Ref       string
	Namespace string
	LocalID   string

	PrefLabel map[string]*string
	AltLabel  map[string]*string

	// Hierarchy references in document order, duplicates preserved.
	Broader  []string
	Narrower []string

	Deprecated bool
	ReplacedBy *string
}

// DeprecatedPair records a concept retired from active use, optionally
// pointing at its successor.
type DeprecatedPair struct {
	Ref        string
	ReplacedBy *string
}

// Extract walks every skos:Concept subject in the graph and returns the
// current concepts keyed by ontology reference, plus the deprecated pairs for
// subjects that no longer carry their namespace's meta type assertion.
// Subjects outside the yso/jupo namespaces are ignored entirely.
func Extract(g *Graph) (map[string]*Concept, []DeprecatedPair) {
	concepts := map[string]*Concept{}
	var deprecated []DeprecatedPair

	for _, subj := range g.SubjectsByType(skosConcept) {
		ns, localID, ok := splitRef(subj)
		if !ok {
			continue
		}
		if ns != namespaceYSO && ns != namespaceJUPO {
			continue
		}
		ref := ns + ":" + localID

		if !hasMetaType(g, subj, ns) {
			// Not a current concept. Only deprecation markers are of
			// interest; anything else is skipped.
			if g.Has(subj, owlDeprecated) {
				deprecated = append(deprecated, DeprecatedPair{
					Ref:        ref,
					ReplacedBy: replacementRef(g, subj),
				})
			}
			continue
		}

		c := &Concept{
			Ref:       ref,
			Namespace: ns,
			LocalID:   localID,
			PrefLabel: labelMap(g, subj, skosPrefLabel),
			AltLabel:  labelMap(g, subj, skosAltLabel),
			Broader:   refList(g, subj, skosBroader),
			Narrower:  refList(g, subj, skosNarrower),
		}
		if g.Has(subj, owlDeprecated) {
			c.Deprecated = true
			c.ReplacedBy = replacementRef(g, subj)
		}
		concepts[ref] = c
	}

	return concepts, deprecated
}

// hasMetaType applies the namespace specific secondary type check: yso
// concepts must be typed yso-meta Concept or Individual, jupo concepts
// jupo-meta Concept.
func hasMetaType(g *Graph, subj, ns string) bool {
	switch ns {
	case namespaceYSO:
		return g.HasType(subj, ysoMetaConcept) || g.HasType(subj, ysoMetaIndividual)
	case namespaceJUPO:
		return g.HasType(subj, jupoMetaConcept)
	}
	return false
}

// splitRef derives (namespace, local id) from the last two path segments of
// a concept IRI, e.g. http://www.yso.fi/onto/yso/p1200 -> (yso, p1200).
func splitRef(iri string) (string, string, bool) {
	parts := strings.Split(strings.TrimSuffix(iri, "/"), "/")
	if len(parts) < 2 {
		return "", "", false
	}
	ns, id := parts[len(parts)-2], parts[len(parts)-1]
	if ns == "" || id == "" {
		return "", "", false
	}
	return ns, id, true
}

func labelMap(g *Graph, subj, pred string) map[string]*string {
	result := map[string]*string{}
	for _, lang := range supportedLanguages {
		result[lang] = nil
	}
	for _, obj := range g.Objects(subj, pred) {
		lit, ok := obj.(rdf.Literal)
		if !ok {
			continue
		}
		lang := lit.Lang()
		if _, supported := result[lang]; !supported {
			continue
		}
		text := lit.String()
		result[lang] = &text
	}
	return result
}

func refList(g *Graph, subj, pred string) []string {
	var refs []string
	for _, obj := range g.Objects(subj, pred) {
		if obj.Type() != rdf.TermIRI {
			continue
		}
		if ns, id, ok := splitRef(obj.String()); ok {
			refs = append(refs, ns+":"+id)
		}
	}
	return refs
}

func replacementRef(g *Graph, subj string) *string {
	for _, obj := range g.Objects(subj, dctermsIsReplacedBy) {
		if obj.Type() != rdf.TermIRI {
			continue
		}
		if ns, id, ok := splitRef(obj.String()); ok {
			ref := ns + ":" + id
			return &ref
		}
	}
	return nil
}
