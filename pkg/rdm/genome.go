package rdm

// ReferenceGenomeData describes one genome available in an external
// reference database, as returned by list_reference_genomes.
type ReferenceGenomeData struct {
	Accession *string `json:"accession,omitzero"`
	Status    *string `json:"status,omitzero"`
	Name      *string `json:"name,omitzero"`
	FTPDir    *string `json:"ftp_dir,omitzero"`
	File      *string `json:"file,omitzero"`
	ID        *string `json:"id,omitzero"`
	Version   *string `json:"version,omitzero"`
	Source    *string `json:"source,omitzero"`
	Domain    *string `json:"domain,omitzero"`

	extras
}

func (r *ReferenceGenomeData) WithAccession(v string) *ReferenceGenomeData {
	r.Accession = &v
	return r
}

func (r *ReferenceGenomeData) WithStatus(v string) *ReferenceGenomeData {
	r.Status = &v
	return r
}

func (r *ReferenceGenomeData) WithName(v string) *ReferenceGenomeData {
	r.Name = &v
	return r
}

func (r *ReferenceGenomeData) WithFTPDir(v string) *ReferenceGenomeData {
	r.FTPDir = &v
	return r
}

func (r *ReferenceGenomeData) WithFile(v string) *ReferenceGenomeData {
	r.File = &v
	return r
}

func (r *ReferenceGenomeData) WithID(v string) *ReferenceGenomeData {
	r.ID = &v
	return r
}

func (r *ReferenceGenomeData) WithVersion(v string) *ReferenceGenomeData {
	r.Version = &v
	return r
}

func (r *ReferenceGenomeData) WithSource(v string) *ReferenceGenomeData {
	r.Source = &v
	return r
}

func (r *ReferenceGenomeData) WithDomain(v string) *ReferenceGenomeData {
	r.Domain = &v
	return r
}

func (r ReferenceGenomeData) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *ReferenceGenomeData) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r ReferenceGenomeData) String() string {
	return renderRecord("ReferenceGenomeData", r, r.props)
}

// KBaseReferenceGenomeData describes a genome that has been loaded into a
// KBase workspace. Ref is the workspace object reference ("ws/obj/ver").
type KBaseReferenceGenomeData struct {
	Ref           *string `json:"ref,omitzero"`
	ID            *string `json:"id,omitzero"`
	WorkspaceName *string `json:"workspace_name,omitzero"`
	SourceID      *string `json:"source_id,omitzero"`
	Accession     *string `json:"accession,omitzero"`
	Name          *string `json:"name,omitzero"`
	FTPDir        *string `json:"ftp_dir,omitzero"`
	Version       *string `json:"version,omitzero"`
	Source        *string `json:"source,omitzero"`
	Domain        *string `json:"domain,omitzero"`

	extras
}

func (r *KBaseReferenceGenomeData) WithRef(v string) *KBaseReferenceGenomeData {
	r.Ref = &v
	return r
}

func (r *KBaseReferenceGenomeData) WithID(v string) *KBaseReferenceGenomeData {
	r.ID = &v
	return r
}

func (r *KBaseReferenceGenomeData) WithWorkspaceName(v string) *KBaseReferenceGenomeData {
	r.WorkspaceName = &v
	return r
}

func (r *KBaseReferenceGenomeData) WithSourceID(v string) *KBaseReferenceGenomeData {
	r.SourceID = &v
	return r
}

func (r *KBaseReferenceGenomeData) WithAccession(v string) *KBaseReferenceGenomeData {
	r.Accession = &v
	return r
}

func (r *KBaseReferenceGenomeData) WithName(v string) *KBaseReferenceGenomeData {
	r.Name = &v
	return r
}

func (r *KBaseReferenceGenomeData) WithFTPDir(v string) *KBaseReferenceGenomeData {
	r.FTPDir = &v
	return r
}

func (r *KBaseReferenceGenomeData) WithVersion(v string) *KBaseReferenceGenomeData {
	r.Version = &v
	return r
}

func (r *KBaseReferenceGenomeData) WithSource(v string) *KBaseReferenceGenomeData {
	r.Source = &v
	return r
}

func (r *KBaseReferenceGenomeData) WithDomain(v string) *KBaseReferenceGenomeData {
	r.Domain = &v
	return r
}

func (r KBaseReferenceGenomeData) MarshalJSON() ([]byte, error) {
	return marshalRecord(r, r.props)
}

func (r *KBaseReferenceGenomeData) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, r, &r.props)
}

func (r KBaseReferenceGenomeData) String() string {
	return renderRecord("KBaseReferenceGenomeData", r, r.props)
}
