package rdm

// ListReferenceGenomesParams selects the reference databases to list.
// Each source flag is 0 or 1.
type ListReferenceGenomesParams struct {
	Ensembl     *int64 `json:"ensembl,omitzero"`
	RefSeq      *int64 `json:"refseq,omitzero"`
	Phytozome   *int64 `json:"phytozome,omitzero"`
	UpdatedOnly *int64 `json:"updated_only,omitzero"`

	extras
}

func (r *ListReferenceGenomesParams) WithEnsembl(v int64) *ListReferenceGenomesParams {
	r.Ensembl = &v
	return r
}

func (r *ListReferenceGenomesParams) WithRefSeq(v int64) *ListReferenceGenomesParams {
	r.RefSeq = &v
	return r
}

func (r *ListReferenceGenomesParams) WithPhytozome(v int64) *ListReferenceGenomesParams {
	r.Phytozome = &v
	return r
}

func (r *ListReferenceGenomesParams) WithUpdatedOnly(v int64) *ListReferenceGenomesParams {
	r.UpdatedOnly = &v
	return r
}

func (r ListReferenceGenomesParams) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *ListReferenceGenomesParams) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r ListReferenceGenomesParams) String() string {
	return renderRecord("ListReferenceGenomesParams", r, r.props)
}

// ListLoadedGenomesParams selects which loaded genomes to list.
type ListLoadedGenomesParams struct {
	Ensembl      *int64  `json:"ensembl,omitzero"`
	RefSeq       *int64  `json:"refseq,omitzero"`
	Phytozome    *int64  `json:"phytozome,omitzero"`
	Workspace    *string `json:"workspace,omitzero"`
	CreateReport *int64  `json:"create_report,omitzero"`

	extras
}

func (r *ListLoadedGenomesParams) WithEnsembl(v int64) *ListLoadedGenomesParams {
	r.Ensembl = &v
	return r
}

func (r *ListLoadedGenomesParams) WithRefSeq(v int64) *ListLoadedGenomesParams {
	r.RefSeq = &v
	return r
}

func (r *ListLoadedGenomesParams) WithPhytozome(v int64) *ListLoadedGenomesParams {
	r.Phytozome = &v
	return r
}

func (r *ListLoadedGenomesParams) WithWorkspace(v string) *ListLoadedGenomesParams {
	r.Workspace = &v
	return r
}

func (r *ListLoadedGenomesParams) WithCreateReport(v int64) *ListLoadedGenomesParams {
	r.CreateReport = &v
	return r
}

func (r ListLoadedGenomesParams) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *ListLoadedGenomesParams) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r ListLoadedGenomesParams) String() string {
	return renderRecord("ListLoadedGenomesParams", r, r.props)
}

// ListLoadedTaxonsParams names the workspace whose taxons are listed.
type ListLoadedTaxonsParams struct {
	WorkspaceName *string `json:"workspace_name,omitzero"`
	CreateReport  *int64  `json:"create_report,omitzero"`

	extras
}

func (r *ListLoadedTaxonsParams) WithWorkspaceName(v string) *ListLoadedTaxonsParams {
	r.WorkspaceName = &v
	return r
}

func (r *ListLoadedTaxonsParams) WithCreateReport(v int64) *ListLoadedTaxonsParams {
	r.CreateReport = &v
	return r
}

func (r ListLoadedTaxonsParams) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *ListLoadedTaxonsParams) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r ListLoadedTaxonsParams) String() string {
	return renderRecord("ListLoadedTaxonsParams", r, r.props)
}

// LoadGenomesParams lists the reference genomes to load into a workspace,
// optionally indexing them in SOLR.
type LoadGenomesParams struct {
	Data          *string               `json:"data,omitzero"`
	Genomes       []ReferenceGenomeData `json:"genomes,omitzero"`
	IndexInSolr   *int64                `json:"index_in_solr,omitzero"`
	WorkspaceName *string               `json:"workspace_name,omitzero"`
	CreateReport  *int64                `json:"create_report,omitzero"`

	extras
}

func (r *LoadGenomesParams) WithData(v string) *LoadGenomesParams {
	r.Data = &v
	return r
}

func (r *LoadGenomesParams) WithGenomes(v []ReferenceGenomeData) *LoadGenomesParams {
	r.Genomes = v
	return r
}

func (r *LoadGenomesParams) WithIndexInSolr(v int64) *LoadGenomesParams {
	r.IndexInSolr = &v
	return r
}

func (r *LoadGenomesParams) WithWorkspaceName(v string) *LoadGenomesParams {
	r.WorkspaceName = &v
	return r
}

func (r *LoadGenomesParams) WithCreateReport(v int64) *LoadGenomesParams {
	r.CreateReport = &v
	return r
}

func (r LoadGenomesParams) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *LoadGenomesParams) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r LoadGenomesParams) String() string {
	return renderRecord("LoadGenomesParams", r, r.props)
}

// LoadTaxonsParams lists the taxons to load into a workspace.
type LoadTaxonsParams struct {
	Data          *string              `json:"data,omitzero"`
	Taxons        []ReferenceTaxonData `json:"taxons,omitzero"`
	IndexInSolr   *int64               `json:"index_in_solr,omitzero"`
	WorkspaceName *string              `json:"workspace_name,omitzero"`
	CreateReport  *int64               `json:"create_report,omitzero"`

	extras
}

func (r *LoadTaxonsParams) WithData(v string) *LoadTaxonsParams {
	r.Data = &v
	return r
}

func (r *LoadTaxonsParams) WithTaxons(v []ReferenceTaxonData) *LoadTaxonsParams {
	r.Taxons = v
	return r
}

func (r *LoadTaxonsParams) WithIndexInSolr(v int64) *LoadTaxonsParams {
	r.IndexInSolr = &v
	return r
}

func (r *LoadTaxonsParams) WithWorkspaceName(v string) *LoadTaxonsParams {
	r.WorkspaceName = &v
	return r
}

func (r *LoadTaxonsParams) WithCreateReport(v int64) *LoadTaxonsParams {
	r.CreateReport = &v
	return r
}

func (r LoadTaxonsParams) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *LoadTaxonsParams) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r LoadTaxonsParams) String() string {
	return renderRecord("LoadTaxonsParams", r, r.props)
}

// IndexGenomesInSolrParams lists loaded genomes to index in SOLR.
// The service spells the report flag "creat_report" here.
type IndexGenomesInSolrParams struct {
	Genomes     []KBaseReferenceGenomeData `json:"genomes,omitzero"`
	Workspace   *string                    `json:"workspace,omitzero"`
	CreatReport *int64                     `json:"creat_report,omitzero"`

	extras
}

func (r *IndexGenomesInSolrParams) WithGenomes(v []KBaseReferenceGenomeData) *IndexGenomesInSolrParams {
	r.Genomes = v
	return r
}

func (r *IndexGenomesInSolrParams) WithWorkspace(v string) *IndexGenomesInSolrParams {
	r.Workspace = &v
	return r
}

func (r *IndexGenomesInSolrParams) WithCreatReport(v int64) *IndexGenomesInSolrParams {
	r.CreatReport = &v
	return r
}

func (r IndexGenomesInSolrParams) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *IndexGenomesInSolrParams) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r IndexGenomesInSolrParams) String() string {
	return renderRecord("IndexGenomesInSolrParams", r, r.props)
}
