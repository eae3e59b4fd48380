package finto

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/knakk/rdf"

	"github.com/kaupunki/events-backend/internal/logger"
)

// ErrFetch wraps any failure to retrieve or parse the ontology document.
// Fetch failures are fatal for the run; there is no retry.
var ErrFetch = errors.New("ontology fetch failed")

// Graph is an in-memory triple store indexed by subject. It holds the whole
// ontology document for the duration of one import run; the graph is bounded
// (low thousands of concepts) so no streaming is needed.
type Graph struct {
	triples   []rdf.Triple
	bySubject map[string][]rdf.Triple
}

func NewGraph() *Graph {
	return &Graph{bySubject: map[string][]rdf.Triple{}}
}

func (g *Graph) Add(t rdf.Triple) {
	g.triples = append(g.triples, t)
	subj := t.Subj.String()
	g.bySubject[subj] = append(g.bySubject[subj], t)
}

func (g *Graph) Len() int { return len(g.triples) }

// SubjectsByType returns the IRIs of every subject carrying an rdf:type
// assertion for the given type, in document order, deduplicated.
func (g *Graph) SubjectsByType(typeIRI string) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range g.triples {
		if t.Pred.String() != rdfType {
			continue
		}
		if t.Obj.Type() != rdf.TermIRI || t.Obj.String() != typeIRI {
			continue
		}
		subj := t.Subj.String()
		if !seen[subj] {
			seen[subj] = true
			out = append(out, subj)
		}
	}
	return out
}

// Objects returns every object of (subj, pred, *) in document order.
func (g *Graph) Objects(subj, pred string) []rdf.Object {
	var out []rdf.Object
	for _, t := range g.bySubject[subj] {
		if t.Pred.String() == pred {
			out = append(out, t.Obj)
		}
	}
	return out
}

// Has reports whether at least one (subj, pred, *) triple exists.
func (g *Graph) Has(subj, pred string) bool {
	for _, t := range g.bySubject[subj] {
		if t.Pred.String() == pred {
			return true
		}
	}
	return false
}

// HasType reports whether subj carries rdf:type typeIRI.
func (g *Graph) HasType(subj, typeIRI string) bool {
	for _, t := range g.bySubject[subj] {
		if t.Pred.String() == rdfType && t.Obj.Type() == rdf.TermIRI && t.Obj.String() == typeIRI {
			return true
		}
	}
	return false
}

// Fetcher retrieves the ontology distribution document over HTTP and decodes
// it into a Graph.
type Fetcher struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

func NewFetcher(url string, timeout time.Duration, baseLog *logger.Logger) *Fetcher {
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    baseLog.With("component", "Fetcher"),
	}
}

func (f *Fetcher) Fetch(ctx context.Context) (*Graph, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "text/turtle, application/rdf+xml")

	f.log.Info("Fetching ontology graph...", "url", f.url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrFetch, resp.StatusCode, f.url)
	}

	graph, err := decodeGraph(resp.Body, formatFor(resp.Header.Get("Content-Type")))
	if err != nil {
		return nil, err
	}
	f.log.Info("Ontology graph fetched", "triples", graph.Len())
	return graph, nil
}

func formatFor(contentType string) rdf.Format {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "rdf+xml") || strings.Contains(ct, "application/xml"):
		return rdf.RDFXML
	case strings.Contains(ct, "n-triples"):
		return rdf.NTriples
	default:
		return rdf.Turtle
	}
}

func decodeGraph(r io.Reader, format rdf.Format) (*Graph, error) {
	graph := NewGraph()
	dec := rdf.NewTripleDecoder(r, format)
	for {
		triple, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: decode: %v", ErrFetch, err)
		}
		graph.Add(triple)
	}
	return graph, nil
}
