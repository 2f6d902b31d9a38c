package fqsplit

import "fmt"

// OutputPath returns the path of the splitIndex'th shard (1-based) out of
// nSplits:
//
//   {outputDir}/{splitIndex}-of-{nSplits}.{outputBase}.fastq
//
// smkFormat is accepted for compatibility with the --smk-format switch.
// fqsplit has always written scatter-style names, so both settings
// produce the same path.
func OutputPath(outputDir, outputBase string, splitIndex, nSplits int, smkFormat bool) string {
	return fmt.Sprintf("%s/%d-of-%d.%s%s", outputDir, splitIndex, nSplits, outputBase, OutputSuffix)
}

// OutputPaths returns the paths of all o.NSplits shards, in shard order.
func OutputPaths(o Opts) []string {
	paths := make([]string, o.NSplits)
	for i := range paths {
		paths[i] = OutputPath(o.OutputDir, o.OutputBase, i+1, o.NSplits, o.SMKFormat)
	}
	return paths
}
