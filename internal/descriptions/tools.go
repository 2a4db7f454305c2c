package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	// Extraction Tools
	SDSExtractFileDescription = `Extract key fields from a single Safety Data Sheet (SDS) PDF.

**When to use:** Need the product name, product number, manufacturer, usage, revision date, and CAS numbers from one SDS document.

**Why it's useful:** Runs the full heuristic pipeline (section segmentation, field matching, CAS/concentration pairing) and returns a structured record instead of raw text.

**Examples:**
• Single document lookup: "Extract fields from acetone-sds.pdf to populate the chemical register"
• Spot check: "Run extraction on the newly received supplier SDS before bulk import"
• Data verification: "Extract toluene-sds.pdf and compare the revision date against the inventory"

**Common workflows:**
1. Intake: Validate file → Extract fields → Review record → Store in register
2. Audit: Extract fields → Compare against existing data → Flag discrepancies
3. Enrichment: Extract CAS numbers → Look up hazard data → Attach to inventory

**Best practices:** Run sds_validate_file first on files from unknown sources; empty fields mean the heuristics found no match, not a processing error.`

	SDSExtractDirectoryDescription = `Extract fields from every SDS PDF in a directory in one pass.

**When to use:** Need to process a folder of Safety Data Sheets into a single tabular result set.

**Why it's useful:** Handles the whole directory with per-file fault isolation: unreadable PDFs are skipped and reported, never aborting the batch.

**Examples:**
• Bulk import: "Extract all SDS files in /data/sds/ for the chemical inventory"
• Supplier delivery: "Process the new batch of supplier sheets in /incoming/"
• Periodic refresh: "Re-run extraction over /archive/sds/ after updating the keyword map"

**Common workflows:**
1. Bulk Processing: Extract directory → Review skipped files → Export records
2. Incremental Intake: Search directory → Extract new files → Merge with register
3. Quality Control: Extract directory → Count empty fields → Tune keywords

**Best practices:** Check the skipped-file list in the response; files that fail extraction are listed there rather than failing the whole run.`

	// Validation and Discovery Tools
	SDSValidateFileDescription = `Verify PDF file integrity and readability before extraction.

**When to use:** Before processing SDS files from unknown sources, especially in automated workflows.

**Why it's useful:** Identifies corrupted or non-PDF files early, before they surface as confusing extraction failures.

**Examples:**
• Intake safety: "Validate all PDFs in /incoming/ before bulk extraction"
• Upload verification: "Check the uploaded supplier-sds.pdf is a readable PDF"
• Troubleshooting: "Validate broken.pdf to see why extraction returned nothing"

**Common workflows:**
1. Automated Processing: Validate → Extract if valid → Handle errors gracefully
2. Quality Check: Validate → Report issues → Fix or reject bad files

**Best practices:** Always run this first in automated pipelines handling files of unknown provenance.`

	SDSStatsFileDescription = `Get metadata and statistics about an SDS PDF document.

**When to use:** Need page count, file size, or document properties such as author and producer before or after extraction.

**Why it's useful:** Document metadata often reveals the issuing software and revision history, useful when the heuristic revision date lookup comes back empty.

**Examples:**
• Provenance check: "Get metadata from supplier-sds.pdf to see which tool produced it"
• Processing planning: "Check page count of the 40MB sheet before extraction"
• Audit trail: "Record creation date and producer of each sheet for compliance"

**Common workflows:**
1. Cataloging: Get stats → Store metadata → Index for search
2. Debugging: Check stats → Compare metadata dates with extracted revision date

**Best practices:** Metadata fields are optional in PDFs; absent fields are omitted from the response rather than reported as errors.`

	SDSSearchDirectoryDescription = `Discover and filter SDS PDF files across directories.

**When to use:** Need to find specific sheets by name, explore an unknown directory, or build a file inventory before batch extraction.

**Why it's useful:** Locates documents without manual browsing and supports substring matching on file names.

**Examples:**
• Find a supplier's sheets: "Search /data/sds/ for files containing 'sigma'"
• Inventory building: "List all PDFs in /archive/ to scope the next batch run"
• Targeted lookup: "Find sheets with 'acetone' in the name before extraction"

**Common workflows:**
1. Targeted Processing: Search for patterns → Extract matching files → Review records
2. Scoping: List directory → Count files → Plan batch extraction

**Best practices:** The query matches file names only, not document content; leave it empty to list everything.`

	// Utility Tools
	SDSServerInfoDescription = `Get server status, available tools, and the configured SDS directory contents.

**When to use:** Starting a session, troubleshooting missing files, or discovering what the server can do.

**Why it's useful:** Shows the configured directory, its current contents, and every available tool with usage guidance in one call.

**Examples:**
• Session startup: "Check server info to confirm the SDS directory is wired up"
• Troubleshooting: "See why extraction can't find files by checking the configured directory"
• Discovery: "List all available tools before scripting a workflow"

**Common workflows:**
1. Session Startup: Check server info → Verify directory → Plan processing
2. Debugging: Review configured paths → Verify tool availability → Retry

**Best practices:** Run at the start of sessions; the directory listing is a quick sanity check that the server sees your files.`
)
