/*
Package utils contains decorators shared by every handler: panic recovery,
logging, result tagging and savepoints.
*/
package utils
