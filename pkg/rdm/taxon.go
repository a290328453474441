package rdm

// ReferenceTaxonData describes one taxon of the NCBI taxonomy as loaded by
// load_taxons. The *Flag fields are 0/1 integers.
type ReferenceTaxonData struct {
	TaxonomyID               *int64   `json:"taxonomy_id,omitzero"`
	ScientificName           *string  `json:"scientific_name,omitzero"`
	ScientificLineage        *string  `json:"scientific_lineage,omitzero"`
	Rank                     *string  `json:"rank,omitzero"`
	Kingdom                  *string  `json:"kingdom,omitzero"`
	Domain                   *string  `json:"domain,omitzero"`
	Aliases                  []string `json:"aliases,omitzero"`
	GeneticCode              *int64   `json:"genetic_code,omitzero"`
	ParentTaxonRef           *string  `json:"parent_taxon_ref,omitzero"`
	EMBLCode                 *string  `json:"embl_code,omitzero"`
	InheritedDivFlag         *int64   `json:"inherited_div_flag,omitzero"`
	InheritedGCFlag          *int64   `json:"inherited_GC_flag,omitzero"`
	MitochondrialGeneticCode *int64   `json:"mitochondrial_genetic_code,omitzero"`
	InheritedMGCFlag         *int64   `json:"inherited_MGC_flag,omitzero"`
	GCHiddenFlag             *int64   `json:"GC_hidden_flag,omitzero"`
	HiddenSubtreeFlag        *int64   `json:"hidden_subtree_flag,omitzero"`
	DivisionID               *int64   `json:"division_id,omitzero"`
	Comments                 *string  `json:"comments,omitzero"`

	extras
}

func (r *ReferenceTaxonData) WithTaxonomyID(v int64) *ReferenceTaxonData {
	r.TaxonomyID = &v
	return r
}

func (r *ReferenceTaxonData) WithScientificName(v string) *ReferenceTaxonData {
	r.ScientificName = &v
	return r
}

func (r *ReferenceTaxonData) WithScientificLineage(v string) *ReferenceTaxonData {
	r.ScientificLineage = &v
	return r
}

func (r *ReferenceTaxonData) WithRank(v string) *ReferenceTaxonData {
	r.Rank = &v
	return r
}

func (r *ReferenceTaxonData) WithKingdom(v string) *ReferenceTaxonData {
	r.Kingdom = &v
	return r
}

func (r *ReferenceTaxonData) WithDomain(v string) *ReferenceTaxonData {
	r.Domain = &v
	return r
}

func (r *ReferenceTaxonData) WithAliases(v []string) *ReferenceTaxonData {
	r.Aliases = v
	return r
}

func (r *ReferenceTaxonData) WithGeneticCode(v int64) *ReferenceTaxonData {
	r.GeneticCode = &v
	return r
}

func (r *ReferenceTaxonData) WithParentTaxonRef(v string) *ReferenceTaxonData {
	r.ParentTaxonRef = &v
	return r
}

func (r *ReferenceTaxonData) WithEMBLCode(v string) *ReferenceTaxonData {
	r.EMBLCode = &v
	return r
}

func (r *ReferenceTaxonData) WithInheritedDivFlag(v int64) *ReferenceTaxonData {
	r.InheritedDivFlag = &v
	return r
}

func (r *ReferenceTaxonData) WithInheritedGCFlag(v int64) *ReferenceTaxonData {
	r.InheritedGCFlag = &v
	return r
}

func (r *ReferenceTaxonData) WithMitochondrialGeneticCode(v int64) *ReferenceTaxonData {
	r.MitochondrialGeneticCode = &v
	return r
}

func (r *ReferenceTaxonData) WithInheritedMGCFlag(v int64) *ReferenceTaxonData {
	r.InheritedMGCFlag = &v
	return r
}

func (r *ReferenceTaxonData) WithGCHiddenFlag(v int64) *ReferenceTaxonData {
	r.GCHiddenFlag = &v
	return r
}

func (r *ReferenceTaxonData) WithHiddenSubtreeFlag(v int64) *ReferenceTaxonData {
	r.HiddenSubtreeFlag = &v
	return r
}

func (r *ReferenceTaxonData) WithDivisionID(v int64) *ReferenceTaxonData {
	r.DivisionID = &v
	return r
}

func (r *ReferenceTaxonData) WithComments(v string) *ReferenceTaxonData {
	r.Comments = &v
	return r
}

func (r ReferenceTaxonData) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *ReferenceTaxonData) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r ReferenceTaxonData) String() string {
	return renderRecord("ReferenceTaxonData", r, r.props)
}

// KBaseReferenceTaxonData is a taxon loaded into KBase together with the
// workspace reference of the stored object.
type KBaseReferenceTaxonData struct {
	Taxon *ReferenceTaxonData `json:"taxon,omitzero"`
	WSRef *string             `json:"ws_ref,omitzero"`

	extras
}

func (r *KBaseReferenceTaxonData) WithTaxon(v *ReferenceTaxonData) *KBaseReferenceTaxonData {
	r.Taxon = v
	return r
}

func (r *KBaseReferenceTaxonData) WithWSRef(v string) *KBaseReferenceTaxonData {
	r.WSRef = &v
	return r
}

func (r KBaseReferenceTaxonData) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *KBaseReferenceTaxonData) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r KBaseReferenceTaxonData) String() string {
	return renderRecord("KBaseReferenceTaxonData", r, r.props)
}
