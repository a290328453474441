package rdm

// UpdateParams is implemented by every revision of the update_loaded_genomes
// parameter record. The revisions are not interchangeable on the wire; pick
// the one the target service release understands.
type UpdateParams interface {
	updateLoadedGenomesParams()
}

var (
	_ UpdateParams = (*UpdateLoadedGenomesParams)(nil)
	_ UpdateParams = (*UpdateLoadedGenomesParamsV1)(nil)
)

// UpdateLoadedGenomesParams is the current revision of the update arguments.
// It spells the report flag "creat_report" and names the formats "formats".
type UpdateLoadedGenomesParams struct {
	Ensembl       *int64                `json:"ensembl,omitzero"`
	RefSeq        *int64                `json:"refseq,omitzero"`
	Phytozome     *int64                `json:"phytozome,omitzero"`
	GenomeData    []ReferenceGenomeData `json:"genomeData,omitzero"`
	WorkspaceName *string               `json:"workspace_name,omitzero"`
	CreatReport   *int64                `json:"creat_report,omitzero"`
	Formats       *string               `json:"formats,omitzero"`

	extras
}

func (*UpdateLoadedGenomesParams) updateLoadedGenomesParams() {}

func (r *UpdateLoadedGenomesParams) WithEnsembl(v int64) *UpdateLoadedGenomesParams {
	r.Ensembl = &v
	return r
}

func (r *UpdateLoadedGenomesParams) WithRefSeq(v int64) *UpdateLoadedGenomesParams {
	r.RefSeq = &v
	return r
}

func (r *UpdateLoadedGenomesParams) WithPhytozome(v int64) *UpdateLoadedGenomesParams {
	r.Phytozome = &v
	return r
}

func (r *UpdateLoadedGenomesParams) WithGenomeData(v []ReferenceGenomeData) *UpdateLoadedGenomesParams {
	r.GenomeData = v
	return r
}

func (r *UpdateLoadedGenomesParams) WithWorkspaceName(v string) *UpdateLoadedGenomesParams {
	r.WorkspaceName = &v
	return r
}

func (r *UpdateLoadedGenomesParams) WithCreatReport(v int64) *UpdateLoadedGenomesParams {
	r.CreatReport = &v
	return r
}

func (r *UpdateLoadedGenomesParams) WithFormats(v string) *UpdateLoadedGenomesParams {
	r.Formats = &v
	return r
}

func (r UpdateLoadedGenomesParams) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *UpdateLoadedGenomesParams) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r UpdateLoadedGenomesParams) String() string {
	return renderRecord("UpdateLoadedGenomesParams", r, r.props)
}

// UpdateLoadedGenomesParamsV1 is the older revision of the update arguments,
// using "create_report" and "fileformats".
type UpdateLoadedGenomesParamsV1 struct {
	Ensembl       *int64                `json:"ensembl,omitzero"`
	RefSeq        *int64                `json:"refseq,omitzero"`
	Phytozome     *int64                `json:"phytozome,omitzero"`
	GenomeData    []ReferenceGenomeData `json:"genomeData,omitzero"`
	WorkspaceName *string               `json:"workspace_name,omitzero"`
	CreateReport  *int64                `json:"create_report,omitzero"`
	FileFormats   *string               `json:"fileformats,omitzero"`

	extras
}

func (*UpdateLoadedGenomesParamsV1) updateLoadedGenomesParams() {}

func (r *UpdateLoadedGenomesParamsV1) WithEnsembl(v int64) *UpdateLoadedGenomesParamsV1 {
	r.Ensembl = &v
	return r
}

func (r *UpdateLoadedGenomesParamsV1) WithRefSeq(v int64) *UpdateLoadedGenomesParamsV1 {
	r.RefSeq = &v
	return r
}

func (r *UpdateLoadedGenomesParamsV1) WithPhytozome(v int64) *UpdateLoadedGenomesParamsV1 {
	r.Phytozome = &v
	return r
}

func (r *UpdateLoadedGenomesParamsV1) WithGenomeData(v []ReferenceGenomeData) *UpdateLoadedGenomesParamsV1 {
	r.GenomeData = v
	return r
}

func (r *UpdateLoadedGenomesParamsV1) WithWorkspaceName(v string) *UpdateLoadedGenomesParamsV1 {
	r.WorkspaceName = &v
	return r
}

func (r *UpdateLoadedGenomesParamsV1) WithCreateReport(v int64) *UpdateLoadedGenomesParamsV1 {
	r.CreateReport = &v
	return r
}

func (r *UpdateLoadedGenomesParamsV1) WithFileFormats(v string) *UpdateLoadedGenomesParamsV1 {
	r.FileFormats = &v
	return r
}

func (r UpdateLoadedGenomesParamsV1) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *UpdateLoadedGenomesParamsV1) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r UpdateLoadedGenomesParamsV1) String() string {
	return renderRecord("UpdateLoadedGenomesParamsV1", r, r.props)
}
