// Package request contains the TransportRequest aggregate, the persisted
// record of a fulfilled shipment.
package request
