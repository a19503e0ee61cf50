// 17 Oct 2026

/*
Addkegg reads tab separated BLAST output and, for each hit with an
e-value below a threshold, asks the KEGG REST service what the subject
UniProt ID maps to.
Usage:
	addkegg [-i blast.txt] [-e 1e-50] [-o out.txt]

For a hit, the UniProt ID (column 2) goes to the first KEGG gene, that
goes to its first orthology (KO) ID, which goes to a list of pathways.
The generic "map" pathways are dropped. Each remaining pathway gives one
output line: the BLAST line, the KO ID, the pathway ID and the pathway
name, separated by tabs. The e-value is column 8.

Flags:
	-i, --infile
		BLAST output (default ./data/alignPredicted_1.txt), may be gzipped
	-e, --evalue
		threshold (default 1e-50)
	-o, --outfile
		where results go (default ./results/alignPredicted_1_results.txt).
		The directory is made if it is not there.
	--config
		JSON file with base_url, timeout_seconds, log_level and
		user_agent (default kegg.json). A missing file is fine.
	--base-url
		KEGG server, overrides the config
	-v, --verbose
		debug messages on stderr

A UniProt ID seen twice is only looked up once. A request that fails
stops the run. There are no retries.
*/
package main
