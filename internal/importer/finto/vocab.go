package finto

// Well-known IRIs of the vocabularies the JUPO/YSO graph is expressed in.
const (
	rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	skosConcept   = "http://www.w3.org/2004/02/skos/core#Concept"
	skosPrefLabel = "http://www.w3.org/2004/02/skos/core#prefLabel"
	skosAltLabel  = "http://www.w3.org/2004/02/skos/core#altLabel"
	skosBroader   = "http://www.w3.org/2004/02/skos/core#broader"
	skosNarrower  = "http://www.w3.org/2004/02/skos/core#narrower"

	owlDeprecated       = "http://www.w3.org/2002/07/owl#deprecated"
	dctermsIsReplacedBy = "http://purl.org/dc/terms/isReplacedBy"

	// Secondary type assertions a concept must carry to be considered
	// current in its namespace.
	ysoMetaConcept    = "http://www.yso.fi/onto/yso-meta/Concept"
	ysoMetaIndividual = "http://www.yso.fi/onto/yso-meta/Individual"
	jupoMetaConcept   = "http://www.yso.fi/onto/jupo-meta/Concept"
)

const (
	namespaceYSO  = "yso"
	namespaceJUPO = "jupo"
)

// supportedLanguages are the locales the keyword table carries columns for.
// Label maps always contain exactly these keys.
var supportedLanguages = []string{"fi", "sv", "en"}
