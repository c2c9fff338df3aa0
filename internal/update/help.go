package update

const helpText = `# Timesheet

A stopwatch-driven activity log stored in a local SQLite database.

## Grid

- arrows / hjkl move around, left/right switch the filtered day, t jumps to today
- 1 / 2 / 3 edit start / end / description of the selected row (enter commits, esc cancels)
- p toggles the posted flag, x deletes the selected row
- rows highlighted as overlapping intersect another record on the same day

## Tracking

- space starts the stopwatch; space again stops it and logs the interval
- n opens the manual entry form (tab cycles fields, enter submits)

## Commands (/)

- add HH:MM HH:MM description
- day dd/mm/yy
- export dd/mm/yy dd/mm/yy
- posted
`
