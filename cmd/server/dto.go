package main

import "github.com/gorilla/schema"

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type newGameQuery struct {
	Difficulty string `schema:"difficulty,required"`
}

func decodeNewGame(src map[string][]string) (newGameQuery, error) {
	var dto newGameQuery
	err := queryDecoder.Decode(&dto, src)
	return dto, err
}

type moveQuery struct {
	Move string `schema:"move,required"`
	Row  int    `schema:"row,required"`
	Col  int    `schema:"col,required"`
}

func decodeMove(src map[string][]string) (moveQuery, error) {
	var dto moveQuery
	err := queryDecoder.Decode(&dto, src)
	return dto, err
}
