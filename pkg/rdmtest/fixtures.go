package rdmtest

import (
	"strconv"

	"github.com/kbaseapps/refdatamgr/pkg/rdm"
)

// Credentials registered on every new Server.
const (
	DefaultUser     = "rdmtester"
	DefaultPassword = "s3cret"
	DefaultToken    = "RDMTESTTOKEN0123456789"
)

// Workspace used by the fixtures.
const Workspace = "ReferenceDataManager"

// ReferenceGenomes returns the genomes the fake lists as available upstream.
func ReferenceGenomes() []rdm.ReferenceGenomeData {
	return []rdm.ReferenceGenomeData{
		*(&rdm.ReferenceGenomeData{}).
			WithAccession("GCF_000005845.2").
			WithStatus("reference genome").
			WithName("Escherichia coli str. K-12 substr. MG1655").
			WithFTPDir("ftp://ftp.ncbi.nlm.nih.gov/genomes/all/GCF/000/005/845/GCF_000005845.2_ASM584v2").
			WithFile("GCF_000005845.2_ASM584v2").
			WithID("GCF_000005845.2").
			WithVersion("2").
			WithSource("refseq").
			WithDomain("bacteria"),
		*(&rdm.ReferenceGenomeData{}).
			WithAccession("GCF_000009045.1").
			WithStatus("representative genome").
			WithName("Bacillus subtilis subsp. subtilis str. 168").
			WithFTPDir("ftp://ftp.ncbi.nlm.nih.gov/genomes/all/GCF/000/009/045/GCF_000009045.1_ASM904v1").
			WithFile("GCF_000009045.1_ASM904v1").
			WithID("GCF_000009045.1").
			WithVersion("1").
			WithSource("refseq").
			WithDomain("bacteria"),
	}
}

// LoadedGenomes returns the fixture genomes as stored in the workspace.
func LoadedGenomes() []rdm.KBaseReferenceGenomeData {
	var out []rdm.KBaseReferenceGenomeData
	for i, g := range ReferenceGenomes() {
		k := (&rdm.KBaseReferenceGenomeData{}).
			WithRef("15792/" + strconv.Itoa(100+i) + "/1").
			WithID(*g.ID).
			WithWorkspaceName(Workspace).
			WithSourceID(*g.ID).
			WithAccession(*g.Accession).
			WithName(*g.Name).
			WithFTPDir(*g.FTPDir).
			WithVersion(*g.Version).
			WithSource(*g.Source).
			WithDomain(*g.Domain)
		out = append(out, *k)
	}
	return out
}

// Taxons returns the fixture taxons.
func Taxons() []rdm.ReferenceTaxonData {
	return []rdm.ReferenceTaxonData{
		*(&rdm.ReferenceTaxonData{}).
			WithTaxonomyID(562).
			WithScientificName("Escherichia coli").
			WithScientificLineage("cellular organisms; Bacteria; Proteobacteria; Gammaproteobacteria; Enterobacterales; Enterobacteriaceae; Escherichia").
			WithRank("species").
			WithKingdom("Bacteria").
			WithDomain("Bacteria").
			WithAliases([]string{"E. coli", "Bacillus coli"}).
			WithGeneticCode(11).
			WithParentTaxonRef("ReferenceTaxons/561_taxon").
			WithDivisionID(0),
		*(&rdm.ReferenceTaxonData{}).
			WithTaxonomyID(1423).
			WithScientificName("Bacillus subtilis").
			WithRank("species").
			WithKingdom("Bacteria").
			WithDomain("Bacteria").
			WithGeneticCode(11).
			WithParentTaxonRef("ReferenceTaxons/653685_taxon"),
	}
}

// LoadedTaxons returns the fixture taxons with their workspace references.
func LoadedTaxons() []rdm.KBaseReferenceTaxonData {
	var out []rdm.KBaseReferenceTaxonData
	for i, tx := range Taxons() {
		out = append(out, *(&rdm.KBaseReferenceTaxonData{}).
			WithTaxon(&tx).
			WithWSRef("12570/" + strconv.Itoa(200+i) + "/3"))
	}
	return out
}

// Status is the status document the fake reports.
func Status() map[string]any {
	return map[string]any{
		"state":           "OK",
		"message":         "",
		"version":         "0.0.5",
		"git_url":         "https://github.com/kbaseapps/ReferenceDataManager",
		"git_commit_hash": "4f2c1c1a0a3b4d9c8e7f6a5b4c3d2e1f0a9b8c7d",
	}
}

func defaultResults() map[string]any {
	return map[string]any{
		rdm.OpListReferenceGenomes: ReferenceGenomes(),
		rdm.OpListLoadedGenomes:    LoadedGenomes(),
		rdm.OpListLoadedTaxons:     LoadedTaxons(),
		rdm.OpLoadGenomes:          LoadedGenomes(),
		rdm.OpLoadTaxons:           Taxons(),
		rdm.OpIndexGenomesInSolr:   LoadedGenomes(),
		rdm.OpUpdateLoadedGenomes:  LoadedGenomes()[:1],
		rdm.OpStatus:               Status(),
	}
}
