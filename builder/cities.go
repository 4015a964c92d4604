// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// cities.go - the 10-city road network fixture.
//
// Weights are road distances; locations are approximate (lon, lat) of each
// city or delta region.

package builder

import "github.com/paulmach/orb"

// City names in index order.
const (
	Beijing      = "Beijing"
	Shenyang     = "Shenyang"
	Qingdao      = "Qingdao"
	Xian         = "Xian"
	Zhengzhou    = "Zhengzhou"
	Wuhan        = "Wuhan"
	Chengdu      = "Chengdu"
	Chongqing    = "Chongqing"
	Changsanjiao = "Changsanjiao"
	Zhusanjiao   = "Zhusanjiao"
)

// CityNodes lists the fixture nodes; index i of the built graph is CityNodes[i].
var CityNodes = []Node{
	{Name: Beijing, Location: orb.Point{116.40, 39.90}},
	{Name: Shenyang, Location: orb.Point{123.43, 41.80}},
	{Name: Qingdao, Location: orb.Point{120.38, 36.07}},
	{Name: Xian, Location: orb.Point{108.94, 34.34}},
	{Name: Zhengzhou, Location: orb.Point{113.62, 34.75}},
	{Name: Wuhan, Location: orb.Point{114.31, 30.59}},
	{Name: Chengdu, Location: orb.Point{104.07, 30.57}},
	{Name: Chongqing, Location: orb.Point{106.55, 29.56}},
	{Name: Changsanjiao, Location: orb.Point{121.47, 31.23}},
	{Name: Zhusanjiao, Location: orb.Point{113.26, 23.13}},
}

// CityEdges lists the fixture roads in insertion order.
var CityEdges = []NamedEdge{
	{Beijing, Shenyang, 750},
	{Shenyang, Qingdao, 680},
	{Beijing, Qingdao, 800},
	{Beijing, Xian, 1140},
	{Beijing, Zhengzhou, 650},
	{Xian, Zhengzhou, 570},
	{Zhengzhou, Qingdao, 820},
	{Zhengzhou, Wuhan, 530},
	{Xian, Chengdu, 840},
	{Chengdu, Chongqing, 340},
	{Chongqing, Wuhan, 900},
	{Zhengzhou, Changsanjiao, 1200},
	{Qingdao, Changsanjiao, 960},
	{Wuhan, Changsanjiao, 680},
	{Zhusanjiao, Chongqing, 2500},
	{Zhusanjiao, Wuhan, 1380},
	{Zhusanjiao, Changsanjiao, 2600},
}

// Cities builds the 10-city fixture. The fixture data is static, so a
// construction failure is a programming error and panics.
func Cities() *NamedGraph {
	ng, err := BuildNamed(CityNodes, CityEdges)
	if err != nil {
		panic("builder: city fixture: " + err.Error())
	}

	return ng
}
