package db

var SQLPool = sqlPool
