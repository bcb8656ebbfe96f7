// Package network holds the in-memory model of a CAN network database.
//
// A Database is built by a single ingestion pass (see package dbc) and is
// treated as read-only afterwards. Downstream code generators consume it
// through the accessor surface only.
//
// Key types:
//   - Database: messages, transmitting nodes, attribute schemas
//   - Message: one frame definition and its signals
//   - Signal: one bit-field with scaling, range, and annotation metadata
//   - AttributeSchema / AttributeValue: typed per-message metadata
package network
