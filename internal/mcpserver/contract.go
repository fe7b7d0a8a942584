package mcpserver

// DatasetReference describes the munrotab dataset for LLM consumers of the
// MCP tools: where the data comes from, which columns the records carry, and
// what the category vocabulary means.
const DatasetReference = `# Munro Dataset Reference

The service holds the Scottish Mountaineering Club munrotab table (v6.2) in
memory, loaded once at startup from CSV. The collection is read-only; if the
file changes on disk the process keeps serving the loaded snapshot.

## Identity

- ` + "`runningNo`" + ` — unique running number assigned by the dataset. Use it with
  the ` + "`get_munro`" + ` tool.

## Query fields

- ` + "`name`" + ` — hill name, used for name ordering (lexicographic).
- ` + "`heightInMetre`" + ` — summit height in metres, used for height filters and
  ordering. Range filters are half-open: minimum inclusive, maximum exclusive.
- ` + "`post1997`" + ` — classification marker after the 1997 SMC revision:
  - ` + "`MUN`" + ` — a Munro (separate mountain over 3000 ft).
  - ` + "`TOP`" + ` — a subsidiary top of a Munro.
  - empty — the hill lost its status; such rows never appear in results.

## Descriptive fields (carried through verbatim)

` + "`dobihNumber`" + `, ` + "`streetmap`" + `, ` + "`geograph`" + `, ` + "`hillBagging`" + `,
` + "`smcSection`" + `, ` + "`rhbSection`" + `, ` + "`section`" + `, ` + "`heightInFeet`" + `,
` + "`map1To50k`" + `, ` + "`map1To25k`" + `, ` + "`gridRef`" + `, ` + "`gridRefXY`" + `,
` + "`xcoord`" + `, ` + "`ycoord`" + `, ` + "`comments`" + `.

These are not interpreted by the query engine; treat them as opaque strings.
`
