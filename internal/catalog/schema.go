package catalog

const schema = `
CREATE TABLE IF NOT EXISTS catalog_records (
    natcode        TEXT PRIMARY KEY,
    name           TEXT NOT NULL DEFAULT '',
    make           TEXT NOT NULL DEFAULT '',
    model          TEXT NOT NULL DEFAULT '',
    oem_code       TEXT NOT NULL DEFAULT '',
    price          REAL NOT NULL DEFAULT 0,
    hp             INTEGER NOT NULL DEFAULT 0,
    kw             INTEGER NOT NULL DEFAULT 0,
    cc             INTEGER NOT NULL DEFAULT 0,
    fuel           TEXT NOT NULL DEFAULT '',
    body           TEXT NOT NULL DEFAULT '',
    gear_type      TEXT NOT NULL DEFAULT '',
    traction       TEXT NOT NULL DEFAULT '',
    doors          INTEGER NOT NULL DEFAULT 0,
    seats          INTEGER NOT NULL DEFAULT 0,
    gears          INTEGER NOT NULL DEFAULT 0,
    mass           REAL NOT NULL DEFAULT 0,
    sellable_begin INTEGER NOT NULL DEFAULT 0,
    sellable_end   INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_catalog_records_make ON catalog_records (make);
`
