/*
Package alchemy is a math and geometry library for turning an unordered
collection of 2D curves lying on a work plane into closed planar face
regions. It includes functions for Length, Radians, Vectors, Points, Lines,
Curves, Polygons, and the higher level Sketch pipeline that assembles curves
into Profiles (outer wire plus nested hole wires) suitable for extrusion.
*/
package alchemy
